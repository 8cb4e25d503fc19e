package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/hamster-api/pkg/slug"
)

func TestMake_NombreSimple(t *testing.T) {
	assert.Equal(t, "harina-de-trigo", slug.Make("Harina de Trigo"))
}

func TestMake_Diacriticos(t *testing.T) {
	assert.Equal(t, "cafe-con-leche", slug.Make("Café con Leche"),
		"los diacríticos deben plegarse a ASCII")
}

func TestMake_CaracteresEspeciales(t *testing.T) {
	assert.Equal(t, "atun-en-lata-170g", slug.Make("  Atún en lata (170g)! "))
}

func TestMake_SinCaracteresUsables(t *testing.T) {
	assert.Equal(t, "", slug.Make("¡¿!?"))
}

func TestValid(t *testing.T) {
	assert.True(t, slug.Valid("cafe-con-leche_2"))
	assert.True(t, slug.Valid(""), "cadena vacía es válida, el use case deriva una")
	assert.False(t, slug.Valid("café"), "no se permiten caracteres fuera de [a-zA-Z0-9_-]")
	assert.False(t, slug.Valid("a b"))
}
