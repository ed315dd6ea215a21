package rules

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EchoTools/textpatch/pkg/patch"
)

// checkoutScreen mirrors the layout of the screen the header rules target.
func checkoutScreen(rs patch.RuleSet) string {
	return "      children: [\n" +
		rs[0].Old + "\n" +
		"          const SizedBox(height: 12),\n" +
		rs[1].Old + "\n" +
		"          const SizedBox(height: 12),\n" +
		rs[2].Old + "\n" +
		"      ],\n"
}

func TestEmojiHeaders(t *testing.T) {
	rs := EmojiHeaders()

	t.Run("Order", func(t *testing.T) {
		assert.Equal(t, []string{"ringkasan", "alamat", "metode"}, rs.Names())
		require.NoError(t, rs.Validate())
	})

	t.Run("MisdecodedEmoji", func(t *testing.T) {
		assert.Contains(t, rs[0].Old, "'ðŸ\"¦ Ringkasan Pesanan'")
		assert.Contains(t, rs[1].Old, "'ðŸ\" Alamat Pengiriman'")
		assert.Contains(t, rs[2].Old, "'ðŸ'³ Metode Pembayaran'")
	})

	t.Run("Icons", func(t *testing.T) {
		for i, icon := range []string{"receipt_long_rounded", "location_on_rounded", "payment_rounded"} {
			assert.Contains(t, rs[i].New, "Icon(Icons."+icon+", color: primaryColor, size: 20)")
			assert.Contains(t, rs[i].New, "const SizedBox(width: 8)")
			assert.NotContains(t, rs[i].New, "ð")
			assert.NotContains(t, rs[i].New, rs[i].Old, "replacement must not re-match")
		}
	})

	t.Run("ReturnsCopy", func(t *testing.T) {
		mutated := EmojiHeaders()
		mutated[0].Old = "changed"
		assert.NotEqual(t, "changed", EmojiHeaders()[0].Old)
	})
}

func TestEmojiHeadersApply(t *testing.T) {
	rs := EmojiHeaders()
	in := checkoutScreen(rs)

	out, report := patch.Apply(in, rs)
	require.Equal(t, 3, report.Applied())

	want := "      children: [\n" +
		rs[0].New + "\n" +
		"          const SizedBox(height: 12),\n" +
		rs[1].New + "\n" +
		"          const SizedBox(height: 12),\n" +
		rs[2].New + "\n" +
		"      ],\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("patched screen mismatch (-want +got):\n%s", diff)
	}
	for _, r := range rs {
		assert.NotContains(t, out, r.Old)
	}

	again, report := patch.Apply(out, rs)
	assert.Equal(t, out, again)
	assert.Equal(t, 0, report.Applied())
}

func TestEmojiHeadersOnlyOneSection(t *testing.T) {
	rs := EmojiHeaders()
	in := "// header\n" + rs[1].Old + "\n// footer\n" + strings.TrimSpace(rs[0].New)

	out, report := patch.Apply(in, rs)
	assert.Equal(t, []string{"ringkasan", "metode"}, report.Unmatched())
	assert.Equal(t, "// header\n"+rs[1].New+"\n// footer\n"+strings.TrimSpace(rs[0].New), out)
}
