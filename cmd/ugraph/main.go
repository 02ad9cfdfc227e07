// SPDX-License-Identifier: MIT

// Command ugraph builds an undirected graph from command-line flags and prints
// either its incidence table or its connected vertex pairs.
//
//	ugraph render --vertex a,b,c --edge a:b --symmetric
//	ugraph pairs  --vertex a,b,c --edge a:b --edge c:c
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
