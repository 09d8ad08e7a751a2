package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslatesKnownKeys(t *testing.T) {
	assert.Equal(t, "Get the key from the front desk.", T("OBJECTIVE_START"))
	assert.Equal(t, "Objective: Go north to the pool.", Tf("OBJECTIVE", "Go north to the pool."))
	assert.Equal(t, "Added 001: 3/5 drops.", Tf("PROC_DROP", "001", 3, 5))
}

func TestUnknownKeysPassThrough(t *testing.T) {
	assert.Equal(t, "You picked up the KEY!", T("You picked up the KEY!"))
}

func TestRuntimeKeysAreNotFormatted(t *testing.T) {
	key := "Chlorine at 100% strength"
	assert.Equal(t, key, T(key))
}
