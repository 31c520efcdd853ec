// Package z3check decides tautologies and contradictions with the Z3 SMT
// solver instead of enumerating assignments. It needs libz3 and is only
// compiled with the z3 build tag:
//
//	go test -tags z3 ./src/z3check/...
package z3check
