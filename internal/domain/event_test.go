package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventTypes_AreNamespaced(t *testing.T) {
	for _, et := range []EventType{EventDomainSubmitted, EventDomainRemoved, EventDomainStatusChanged} {
		assert.Regexp(t, `^domain\.[a-z_]+$`, string(et))
	}
}
