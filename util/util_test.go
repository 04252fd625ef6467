package util

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	values := []int{0, 1, 2}
	require.Equal(t, "[0 1 2]", Format(len(values), func(i int) int { return values[i] }))
}

func TestFormatEmpty(t *testing.T) {
	require.Equal(t, "[]", Format(0, func(i int) string { return "unused" }))
}

func TestFormatStrings(t *testing.T) {
	values := []string{"a", "bc"}
	require.Equal(t, "[a bc]", Format(len(values), func(i int) string { return values[i] }))
}

func TestDiscardLogger(t *testing.T) {
	log := DiscardLogger()

	require.False(t, log.IsLevelEnabled(logrus.DebugLevel))
	require.NotPanics(t, func() {
		log.WithField("size", 1).Debug("Dropped")
	})
}
