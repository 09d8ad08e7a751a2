package ebiten

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func TestActiveCodesKeepBindingOrder(t *testing.T) {
	down := map[ebiten.Key]bool{
		ebiten.KeyL:       true,
		ebiten.KeyArrowUp: true,
		ebiten.KeyH:       true,
	}
	active := func(k ebiten.Key) bool { return down[k] }

	for i := 0; i < 20; i++ {
		assert.Equal(t, []string{"arrow_up", "h", "l"}, activeCodes(heldKeys, active))
	}
	assert.Empty(t, activeCodes(pressKeys, active))
}
