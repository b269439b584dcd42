// SPDX-License-Identifier: MIT

package bnum

// Tan returns sin(z)/cos(z).
func Tan[T Number[T]](z T) T { return z.Sin().Div(z.Cos()) }

// Cot returns cos(z)/sin(z).
func Cot[T Number[T]](z T) T { return z.Cos().Div(z.Sin()) }

// Sec returns 1/cos(z).
func Sec[T Number[T]](z T) T { return z.Cos().Inverse() }

// Csc returns 1/sin(z).
func Csc[T Number[T]](z T) T { return z.Sin().Inverse() }

// Tanh returns sinh(z)/cosh(z).
func Tanh[T Number[T]](z T) T { return z.Sinh().Div(z.Cosh()) }

// Coth returns cosh(z)/sinh(z).
func Coth[T Number[T]](z T) T { return z.Cosh().Div(z.Sinh()) }

// Sech returns 1/cosh(z).
func Sech[T Number[T]](z T) T { return z.Cosh().Inverse() }

// Csch returns 1/sinh(z).
func Csch[T Number[T]](z T) T { return z.Sinh().Inverse() }
