package main

import (
	"flag"
	"log"
	"os"

	"deedles.dev/enum/schema"
)

func main() {
	schemaPath := flag.String("schema", "", "enumeration schema file (XML or YAML)")
	out := flag.String("out", "", "output file (default stdout)")
	pkg := flag.String("pkg", "enums", "output package name")
	flag.Parse()

	s, err := schema.LoadFile(*schemaPath)
	if err != nil {
		log.Fatalf("load schema: %v", err)
	}

	ctx := Context{Package: *pkg, Schema: s}
	src, err := ctx.Generate()
	if err != nil {
		log.Fatalf("generate: %v", err)
	}

	w := os.Stdout
	if *out != "" {
		file, err := os.Create(*out)
		if err != nil {
			log.Fatalf("create output: %v", err)
		}
		defer file.Close()
		w = file
	}

	_, err = w.Write(src)
	if err != nil {
		log.Fatalf("write output: %v", err)
	}
}
