package rules

import "github.com/EchoTools/textpatch/pkg/patch"

// The old blocks hold the header labels exactly as they sit in the checkout
// screen, emoji included as mis-decoded Windows-1252 text.
var emojiHeaders = patch.RuleSet{
	{
		Name: "ringkasan",
		Old:  `          const Text(
            'ðŸ"¦ Ringkasan Pesanan',
            style: TextStyle(
              fontSize: 16,
              fontWeight: FontWeight.bold,
              color: textColor,
            ),
          ),`,
		New: `          Row(
            children: [
              Icon(Icons.receipt_long_rounded, color: primaryColor, size: 20),
              const SizedBox(width: 8),
              const Text(
                'Ringkasan Pesanan',
                style: TextStyle(
                  fontSize: 16,
                  fontWeight: FontWeight.bold,
                  color: textColor,
                ),
              ),
            ],
          ),`,
	},
	{
		Name: "alamat",
		Old:  `          // Address
          const Text(
            'ðŸ" Alamat Pengiriman',
            style: TextStyle(
              fontSize: 16,
              fontWeight: FontWeight.bold,
              color: textColor,
            ),
          ),`,
		New: `          // Address
          Row(
            children: [
              Icon(Icons.location_on_rounded, color: primaryColor, size: 20),
              const SizedBox(width: 8),
              const Text(
                'Alamat Pengiriman',
                style: TextStyle(
                  fontSize: 16,
                  fontWeight: FontWeight.bold,
                  color: textColor,
                ),
              ),
            ],
          ),`,
	},
	{
		Name: "metode",
		Old:  `          // Payment Method
          const Text(
            'ðŸ'³ Metode Pembayaran',
            style: TextStyle(
              fontSize: 16,
              fontWeight: FontWeight.bold,
              color: textColor,
            ),
          ),`,
		New: `          // Payment Method
          Row(
            children: [
              Icon(Icons.payment_rounded, color: primaryColor, size: 20),
              const SizedBox(width: 8),
              const Text(
                'Metode Pembayaran',
                style: TextStyle(
                  fontSize: 16,
                  fontWeight: FontWeight.bold,
                  color: textColor,
                ),
              ),
            ],
          ),`,
	},
}

// EmojiHeaders returns the rules that replace the emoji-prefixed section
// headers of the checkout screen with icon rows.
func EmojiHeaders() patch.RuleSet {
	out := make(patch.RuleSet, len(emojiHeaders))
	copy(out, emojiHeaders)
	return out
}
