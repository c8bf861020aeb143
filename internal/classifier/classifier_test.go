package classifier

import (
	"strings"
	"testing"
)

func TestIsCatalog_EmptyOrWhitespace(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\t  \n"} {
		if IsCatalog(in) {
			t.Errorf("IsCatalog(%q) = true, want false", in)
		}
	}
}

func TestIsCatalog_KeywordAndPrice(t *testing.T) {
	in := "OFERTA da semana: arroz tipo 1 por R$ 19,90"
	if !IsCatalog(in) {
		t.Errorf("IsCatalog(%q) = false, want true", in)
	}
}

func TestIsCatalog_ThreeKeywordsNoPrice(t *testing.T) {
	in := "Promoção válido até domingo, desconto em toda a loja"
	if !IsCatalog(in) {
		t.Errorf("IsCatalog(%q) = false, want true", in)
	}
}

func TestIsCatalog_TwoKeywordsNoPrice(t *testing.T) {
	// exactly 2 keyword hits with no price pattern resolves to "not a catalog"
	in := "nova oferta chegando, desconto em breve"
	if IsCatalog(in) {
		t.Errorf("IsCatalog(%q) = true, want false", in)
	}
}

func TestIsCatalog_PriceWithoutKeyword(t *testing.T) {
	in := "R$ 10,00 foi o valor arrecadado na rifa"
	if IsCatalog(in) {
		t.Errorf("IsCatalog(%q) = true, want false", in)
	}
}

func TestIsCatalog_KeywordInsideLargerWord(t *testing.T) {
	// "cada" inside "arrecadado" and "leve" inside "televendas" are not
	// keyword hits; only whole words count.
	in := "televendas arrecadado R$ 15,00 para a quermesse"
	if IsCatalog(in) {
		t.Errorf("IsCatalog(%q) = true, want false", in)
	}
}

func TestIsCatalog_PluralKeyword(t *testing.T) {
	in := "Ofertas da semana: feijão por R$ 7,49"
	if !IsCatalog(in) {
		t.Errorf("IsCatalog(%q) = false, want true", in)
	}
}

func TestIsCatalog_NoSignals(t *testing.T) {
	in := "parabéns a todos os colaboradores pelo excelente trabalho neste ano"
	if IsCatalog(in) {
		t.Errorf("IsCatalog(%q) = true, want false", in)
	}
}

func TestIsCatalog_DeXPorY(t *testing.T) {
	in := "oferta relâmpago: de 29,90 por 19,90"
	if !IsCatalog(in) {
		t.Errorf("IsCatalog(%q) = false, want true", in)
	}
}

func TestIsCatalog_CaseInsensitive(t *testing.T) {
	in := strings.ToUpper("oferta imperdível: leve 3 pague 2")
	if !IsCatalog(in) {
		t.Errorf("IsCatalog(%q) = false, want true", in)
	}
}
