package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEtiquetaDelPeriodo(t *testing.T) {
	g := Gestion{Anio: 2026, Semestre: 1}

	assert.Equal(t, "2026/1", g.Etiqueta())
}

func TestPublicada(t *testing.T) {
	g := Gestion{EstadoPublicacion: PublicacionBorrador}
	assert.False(t, g.Publicada())

	g.EstadoPublicacion = PublicacionPublicada
	assert.True(t, g.Publicada())
}
