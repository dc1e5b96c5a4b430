//go:build tools

package main

// Dependencias de herramientas: swag genera docs/swagger.json para el UI de Swagger.
import (
	_ "github.com/swaggo/swag"
)
