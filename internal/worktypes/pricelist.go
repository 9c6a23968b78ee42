package worktypes

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// PriceListItem is one row of the workshop's built-in price list. Price is
// kept as the hand-written text ("150 - 250", "GRAM + 200"); parsing to a
// seedable default happens in ParsePriceText.
type PriceListItem struct {
	Name  string
	Price string
}

// DefaultPriceList is the workshop's standard repair price list, importable in
// bulk. Ranges seed their first value; gram-plus-labor entries carry no
// seedable default.
var DefaultPriceList = []PriceListItem{
	{Name: "YÜZÜK KÜÇÜLME", Price: "150"},
	{Name: "ZİNCİR YALDIZ", Price: "150 - 250"},
	{Name: "BİLEKLİK YALDIZ", Price: "150 - 250 - 300"},
	{Name: "KÜÇÜLTME VE YALDIZ", Price: "200"},
	{Name: "BÜYÜTME VE YALDIZ", Price: "200"},
	{Name: "YÜZÜK BÜYÜME", Price: "150"},
	{Name: "PARÇALI BÜYÜME VE YALDIZ", Price: "300"},
	{Name: "PARÇALI BÜYÜME", Price: "GRAM + 200"},
	{Name: "KÜPE KOLYE ZİNCİR TEK LAZER", Price: "150"},
	{Name: "PIRLANTA BAKIM VE RODAJ", Price: "300"},
	{Name: "YÜZÜK RODAJ", Price: "300"},
	{Name: "KÜPE ÇİFTİ RODAJ", Price: "300"},
	{Name: "İNCE ZİNCİR KOLYE RODAJ", Price: "300"},
	{Name: "FANTAZİ BİLEZİK ÇİFT TARAFLI KISALTMA CİMAR", Price: "400"},
	{Name: "ROLEX KISALTMA", Price: "250"},
	{Name: "BİLEKLİK KISALTMA ÇİFT TRF", Price: "200"},
	{Name: "TAKIM KISALTMA", Price: "400"},
	{Name: "SET TAKIM KOMPLE RODAJ", Price: "1000"},
	{Name: "KİLİTLİ KISALTMA ÇİFT TARAF VE YALDIZ", Price: "500"},
	{Name: "PIRLANTA KÜÇÜLME VE RODAJ", Price: "350"},
	{Name: "PIRLANTA BÜYÜME VE RODAJ PARÇALI", Price: "GRAM + 400"},
	{Name: "TRABZON KISALTMA VE CİMAR", Price: "750"},
	{Name: "LAZER KAYNAK", Price: "150"},
	{Name: "ÇİFT ALYANS PANTORAF", Price: "150"},
	{Name: "TEK PANT ALYANS", Price: "75"},
	{Name: "KÜNYE PANTORAF", Price: "150"},
	{Name: "KOLYE PANTORAF TEK TARAF", Price: "150"},
	{Name: "GÜMÜŞ KÜÇÜLME", Price: "150"},
	{Name: "GÜMÜŞ PARÇALI BÜYÜME", Price: "200"},
	{Name: "İSİM KOLYE İŞÇİLİK", Price: "GRAM + 1000"},
	{Name: "AİLE İSİM KOLYE", Price: "GRAM + 750"},
	{Name: "GÜMÜŞ İSİM KOLYE ZİNCİRLİ", Price: "1000"},
	{Name: "SONSUZLUK İSİM KOLYE 1 İLA 1,5 GRAM ARASI", Price: "1000"},
	{Name: "GÜMÜŞ SONSUZLUK KOLYE İSİMLİ SADE", Price: "750"},
	{Name: "KABARTMA KÜNYE", Price: "500"},
	{Name: "BİLEZİK RODAJ YAPIMI AJDA MODEL", Price: "500"},
	{Name: "BİLEZİK ROZ YAPIM AJDA", Price: "250"},
	{Name: "TESBİH PÜSKÜL YAPIMI ALTIN HARF BAŞI", Price: "200"},
	{Name: "TESBİH PÜSKÜL YAPIMI İSİM BAŞI GÜMÜŞ", Price: "250"},
	{Name: "GERDANLIK DİZİMİ VE CİMAR ÇOKLU", Price: "350 - 500"},
	{Name: "FOTOĞRAF İŞLEME LAZER", Price: "750"},
	{Name: "SAMANYOLU KISALTMA YALDIZ", Price: "300"},
	{Name: "FANTAZİ BİLEKLİK ÇİFT TARAFLI KISALTMA CİMAR", Price: "300"},
	{Name: "ARAPÇA PANTORAF VE ÇİZİM", Price: "200"},
	{Name: "HALAT KISALMA CİMAR", Price: "200"},
	{Name: "HALAT TAMİR CİMAR", Price: "200"},
	{Name: "HALAT KÜNYE ÇİFT TARAF KISALMA CİMAR", Price: "300"},
	{Name: "İNCİ DİZİM", Price: "200"},
}

var leadingNumber = regexp.MustCompile(`^(\d+)`)

// ParsePriceText extracts the seedable default from hand-written price text.
// Ranges like "150 - 250" resolve to their first number; anything that does
// not start with digits ("GRAM + 200", empty) yields no default.
func ParsePriceText(text string) decimal.NullDecimal {
	trimmed := strings.TrimSpace(text)
	match := leadingNumber.FindString(trimmed)
	if match == "" {
		return decimal.NullDecimal{}
	}
	value, err := decimal.NewFromString(match)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: value, Valid: true}
}
