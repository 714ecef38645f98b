// Package validator wraps struct validation behind a small interface so
// usecases can validate inputs without binding to a concrete library.
package validator
