// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package gatelib provides a small library of demonstration components
// (logic gates, a buffer, a constant driver and a word-addressed RAM)
// built on top of gatesim.Component. It exists to exercise and test the
// core simulator end to end; it is not part of the core's contract.
package gatelib
