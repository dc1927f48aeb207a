package main

import (
	"fmt"
	"io"

	"github.com/Yandex-Practicum/go-ftracker/internal/random"
)

var codeCmd = cmd{
	name:      "code",
	shortHelp: "generates workout code ftracker does not know",
	do:        generateCode,
}

func generateCode(w io.Writer) error {
	_, err := fmt.Fprint(w, random.UnknownCode())
	return err
}
