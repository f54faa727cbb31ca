package main

import (
	"fmt"
	"os"
)

//go:generate swagger generate spec -o swagger.json

// General API information
//
// This API answers natural-language questions about a community board by
// classifying each message, searching the board, and summarizing the results.
//
// swagger:meta
//
// ---
// swagger: '2.0'
// info:
//   title: Board Chatbot API
//   description: |
//     Chat middleware between a board front end and the board's post API.
//     Search requests are classified by an LLM and answered with matching posts.
//   version: 1.0.0
// schemes:
//   - http
//   - https
// consumes:
//   - application/json
// produces:
//   - application/json

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
