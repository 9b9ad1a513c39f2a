package chromatic

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestLabRoundTrip(t *testing.T) {
	colors := []Color{
		RGB(1, 0, 0),
		RGB(0, 1, 0),
		RGB(0.2, 0.4, 0.8),
		RGBA(0.9, 0.9, 0.1, 0.5),
	}

	for _, c := range colors {
		l, a, b, alpha := c.LabA()
		assertColor(t, c, LabA(l, a, b, alpha), 2e-3)
	}
}

func TestLabGrayAxis(t *testing.T) {
	_, a, b, _ := RGB(0.5, 0.5, 0.5).LabA()
	assert.InDelta(t, 0, a, 1e-2)
	assert.InDelta(t, 0, b, 1e-2)

	l, _, _, _ := RGB(1, 1, 1).LabA()
	assert.InDelta(t, 1, l, 1e-3)
}

func TestLChHueIsRadians(t *testing.T) {
	colors := []Color{RGB(1, 0, 0), RGB(0, 1, 0), RGB(0, 0, 1), RGB(0.8, 0.2, 0.6)}

	for _, c := range colors {
		_, _, h, _ := c.LChA()
		assert.GreaterOrEqual(t, h, float32(0))
		assert.Less(t, h, 2*float32(math32.Pi))
	}
}

func TestLChRoundTrip(t *testing.T) {
	colors := []Color{
		RGB(1, 0, 0),
		RGB(0.2, 0.4, 0.8),
		RGB(0.9, 0.6, 0.1),
	}

	for _, c := range colors {
		l, ch, h, alpha := c.LChA()
		assertColor(t, c, LChA(l, ch, h, alpha), 2e-3)
	}
}

func TestInterpolateLabEndpoints(t *testing.T) {
	c1 := RGB(1, 0, 0)
	c2 := RGB(0, 0, 1)

	assertColor(t, c1, c1.InterpolateLab(c2, 0), 2e-3)
	assertColor(t, c2, c1.InterpolateLab(c2, 1), 2e-3)
	assertColor(t, c1, c1.InterpolateLCh(c2, 0), 2e-3)
	assertColor(t, c2, c1.InterpolateLCh(c2, 1), 2e-3)
}

func TestInterpolateLabBlackWhite(t *testing.T) {
	mid := RGB(0, 0, 0).InterpolateLab(RGB(1, 1, 1), 0.5)
	assert.InDelta(t, mid.R, mid.G, 2e-3)
	assert.InDelta(t, mid.G, mid.B, 2e-3)
	// Perceptual midpoint is brighter than the linear-light midpoint.
	assert.Greater(t, mid.R, float32(0.4))
}
