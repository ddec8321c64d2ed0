package docs

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/gofiber/contrib/swagger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// El middleware de swagger hace panic en New si el archivo de FilePath no
// existe, lo que tumbaría el servidor en el arranque. El swagger.json
// generado debe estar versionado junto a docs.go.
func TestSwaggerJSON_ExisteYMontaElMiddleware(t *testing.T) {
	data, err := os.ReadFile("swagger.json")
	require.NoError(t, err, "docs/swagger.json debe estar versionado en el repo")

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc), "swagger.json debe ser JSON válido")
	assert.Equal(t, "2.0", doc["swagger"])
	assert.NotEmpty(t, doc["paths"])

	require.NotPanics(t, func() {
		swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "swagger.json",
			Path:     "docs",
			Title:    "Sistema de Inventario API",
		})
	}, "el middleware debe montarse con el swagger.json versionado")
}
