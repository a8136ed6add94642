/*
Package eft provides error-free transformations on IEEE-754 double precision
values.

An error-free transformation (EFT) maps an arithmetic operation on two
float64 operands to a pair of float64 results (s, t) such that s is the
correctly rounded result of the operation and s + t equals the exact,
infinite-precision result. The transformations in this package are the
classic ones:

  - TwoSum (Knuth), a branch-free exact addition,
  - FastTwoSum (Dekker), exact addition for pre-ordered operands,
  - TwoProduct (Dekker/Veltkamp), exact multiplication via operand splitting.

They require only round-to-nearest hardware arithmetic and form the leaf
layer of the expansion algorithms in the parent package. All operation
orderings are bit-exact contracts and must not be reassociated.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package eft
