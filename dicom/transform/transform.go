// Package transform implements composable, streaming token-stream
// transforms: each one consumes tokens from an upstream source (a
// p10read.Reader, or another Transform) one at a time and produces zero or
// more tokens for whatever is downstream (another Transform, p10build, or
// p10write). None of them hold the whole data set in memory; each bounds
// its working state to the current element and the open sequence/item
// nesting, the same way p10read.Reader does.
package transform

import (
	"github.com/codeninja55/dcmfx/dicom"
)

// Transform is implemented by every token-stream transform in this
// package. Apply is called once per input token, in stream order, and
// returns the tokens (zero, one, or more) to forward downstream.
type Transform interface {
	Apply(tok dicom.Token) ([]dicom.Token, error)
}

// Run drives tokens through a chain of transforms in order, collecting the
// final output. It is a convenience for callers composing a short, fixed
// pipeline in one call rather than wiring each stage's output to the next
// stage's Apply by hand.
func Run(tokens []dicom.Token, stages ...Transform) ([]dicom.Token, error) {
	cur := tokens
	for _, stage := range stages {
		var next []dicom.Token
		for _, tok := range cur {
			out, err := stage.Apply(tok)
			if err != nil {
				return nil, err
			}
			next = append(next, out...)
		}
		cur = next
	}
	return cur, nil
}
