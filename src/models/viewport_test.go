package models_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"market-backdrop/src/models"
)

func TestViewport_Normalized(t *testing.T) {
	cases := []struct {
		name string
		in   models.MViewport
		want models.MViewport
	}{
		{"Plain", models.MViewport{Width: 800, Height: 600, PixelRatio: 2}, models.MViewport{Width: 800, Height: 600, PixelRatio: 2}},
		{"Negative", models.MViewport{Width: -5, Height: -1}, models.MViewport{PixelRatio: 1}},
		{"NaN", models.MViewport{Width: math.NaN(), Height: math.NaN(), PixelRatio: math.NaN()}, models.MViewport{PixelRatio: 1}},
		{"Huge", models.MViewport{Width: 1e15, Height: 1e9, PixelRatio: 100}, models.MViewport{Width: models.MaxViewportSide, Height: models.MaxViewportSide, PixelRatio: models.MaxPixelRatio}},
		{"Inf", models.MViewport{Width: math.Inf(1), Height: math.Inf(-1), PixelRatio: math.Inf(1)}, models.MViewport{Width: models.MaxViewportSide, PixelRatio: models.MaxPixelRatio}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.Normalized())
		})
	}
}

func TestViewport_Within(t *testing.T) {
	limit := models.MViewportLimit{MaxWidth: 1920, MaxHeight: 1080}

	got := models.MViewport{Width: 1e12, Height: math.Inf(1), PixelRatio: 2}.Within(limit)
	assert.Equal(t, models.MViewport{Width: 1920, Height: 1080, PixelRatio: 2}, got)

	got = models.MViewport{Width: 640, Height: 480}.Within(limit)
	assert.Equal(t, models.MViewport{Width: 640, Height: 480, PixelRatio: 1}, got)

	got = models.MViewport{Width: 1e12, Height: 1e12}.Within(models.MViewportLimit{})
	assert.Equal(t, float64(models.MaxViewportSide), got.Width, "an unset limit keeps the hard cap")
}
