package utils

import (
	"encoding/json"
	"fmt"
	"os"
)

func Error(msg string, args ...interface{}) {
	fmt.Printf(msg, args...)
	os.Exit(1)
}

// PrintJSON pretty prints v on stdout.
func PrintJSON(v interface{}) {
	json, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		Error("Failed to encode output: %v\n", err)
	}
	fmt.Println(string(json))
}
