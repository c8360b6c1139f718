// Package schemas provides the embedded SQL schema for each supported driver.
package schemas

import (
	"embed"
	"fmt"
)

//go:embed *.sql
var files embed.FS

// Schema returns the DDL for driver ("sqlite" or "mysql").
func Schema(driver string) (string, error) {
	content, err := files.ReadFile(driver + ".sql")
	if err != nil {
		return "", fmt.Errorf("no schema for driver %q: %w", driver, err)
	}
	return string(content), nil
}
