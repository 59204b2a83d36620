// Package main provides the perceptron CLI.
package main

import (
	"fmt"
	"log"
	"os"
)

const version = "v0.1.0"

func usage() {
	fmt.Println("perceptron - feedforward networks trained by online SGD")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  synthetic  Train on the x1+x2>2 toy problem")
	fmt.Println("  csv        Train on labeled CSV files (label,p0,p1,...)")
	fmt.Println("  idx        Train on MNIST IDX files")
	fmt.Println("")
	fmt.Println("Run 'perceptron <command> -h' for the flags of a command.")
}

func main() {
	log.SetFlags(log.Ltime)

	if len(os.Args) < 2 {
		usage()
		return
	}

	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "version":
		fmt.Printf("perceptron %s\n", version)
	case "synthetic":
		err = runSynthetic(args)
	case "csv":
		err = runCSV(args)
	case "idx":
		err = runIDX(args)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%s: %v", os.Args[1], err)
	}
}
