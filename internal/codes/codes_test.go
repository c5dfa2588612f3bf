package codes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateFromMunicipality(t *testing.T) {
	assert.Equal(t, "SP", StateFromMunicipality("3550308"))
	assert.Equal(t, "MG", StateFromMunicipality("3106200"))
	assert.Equal(t, "RJ", StateFromMunicipality("3304557"))
	assert.Equal(t, "", StateFromMunicipality("9912345"), "unknown prefix")
	assert.Equal(t, "", StateFromMunicipality("3"), "too short")
	assert.Equal(t, "", StateFromMunicipality(""))
}

func TestCreditNatureDescription(t *testing.T) {
	assert.Equal(t, "other credit-bearing operations", CreditNatureDescription("13"))
	assert.Equal(t, "", CreditNatureDescription("99"))
}
