package report

import (
	"bytes"
	"testing"

	"github.com/radhian/ledger-engine/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestWriteTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	WriteTable(&buf, []entity.ClientAccount{
		{Client: 7, Available: decimal.RequireFromString("1.25"), Held: decimal.Zero, Total: decimal.RequireFromString("1.25")},
	})

	out := buf.String()
	assert.Contains(t, out, "available")
	assert.Contains(t, out, "locked")
	assert.Contains(t, out, "1.2500")
	assert.Contains(t, out, "false")
}
