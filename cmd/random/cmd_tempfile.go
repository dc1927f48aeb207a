package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Yandex-Practicum/go-ftracker/internal/random"
)

var tempfileCmd = cmd{
	name:      "tempfile",
	shortHelp: "generates path to random temporary packages file",
	do:        generateTempfile,
}

func generateTempfile(w io.Writer) error {
	filename := strings.ToLower(random.ASCIIString(5, 8)) + ".yaml"
	_, err := fmt.Fprint(w, filepath.Join(os.TempDir(), filename))
	return err
}
