package render

import (
	"math"
	"strings"
)

var (
	wordUnits    = []string{"", "um", "dois", "três", "quatro", "cinco", "seis", "sete", "oito", "nove"}
	wordTeens    = []string{"dez", "onze", "doze", "treze", "quatorze", "quinze", "dezesseis", "dezessete", "dezoito", "dezenove"}
	wordTens     = []string{"", "", "vinte", "trinta", "quarenta", "cinquenta", "sessenta", "setenta", "oitenta", "noventa"}
	wordHundreds = []string{"", "cento", "duzentos", "trezentos", "quatrocentos", "quinhentos", "seiscentos", "setecentos", "oitocentos", "novecentos"}
)

// AmountInWords spells a monetary amount in Brazilian Portuguese, up to the
// hundreds of thousands ("mil e duzentos e trinta e quatro reais e cinquenta
// centavos").
func AmountInWords(amount float64) string {
	if amount == 0 {
		return "zero reais"
	}

	integer := int(math.Floor(amount))
	cents := int(math.Round((amount - float64(integer)) * 100))

	var b strings.Builder

	if integer > 0 {
		if integer >= 1000 {
			thousands := integer / 1000
			if thousands == 1 {
				b.WriteString("mil")
			} else {
				b.WriteString(spellHundreds(thousands))
				b.WriteString(" mil")
			}
			if rest := integer % 1000; rest > 0 {
				b.WriteString(" e ")
				b.WriteString(spellHundreds(rest))
			}
		} else {
			b.WriteString(spellHundreds(integer))
		}

		if integer == 1 {
			b.WriteString(" real")
		} else {
			b.WriteString(" reais")
		}
	}

	if cents > 0 {
		if integer > 0 {
			b.WriteString(" e ")
		}
		b.WriteString(spellHundreds(cents))
		if cents == 1 {
			b.WriteString(" centavo")
		} else {
			b.WriteString(" centavos")
		}
	}

	return b.String()
}

func spellHundreds(n int) string {
	if n == 0 {
		return ""
	}
	if n == 100 {
		return "cem"
	}

	var b strings.Builder

	h := n / 100
	t := (n % 100) / 10
	u := n % 10

	if h > 0 {
		b.WriteString(wordHundreds[h])
		if t > 0 || u > 0 {
			b.WriteString(" e ")
		}
	}

	switch {
	case t >= 2:
		b.WriteString(wordTens[t])
		if u > 0 {
			b.WriteString(" e ")
			b.WriteString(wordUnits[u])
		}
	case t == 1:
		b.WriteString(wordTeens[u])
	case u > 0:
		b.WriteString(wordUnits[u])
	}

	return b.String()
}
