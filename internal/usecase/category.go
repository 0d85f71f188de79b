package usecase

import "strings"

// CategoryOther is the fallback when no keyword matches.
const CategoryOther = "outros"

type serviceCategory struct {
	name     string
	keywords []string
}

// Ordered: the first category with a matching keyword wins.
var serviceCategories = []serviceCategory{
	{"consultoria", []string{"consultoria", "consulta", "advisory", "estratégia", "planejamento"}},
	{"desenvolvimento", []string{"desenvolvimento", "programação", "software", "app", "site", "sistema", "código"}},
	{"design", []string{"design", "logo", "identidade", "visual", "gráfico", "layout", "arte"}},
	{"marketing", []string{"marketing", "publicidade", "social media", "ads", "propaganda", "divulgação"}},
	{"educacao", []string{"curso", "aula", "treinamento", "workshop", "palestra", "ensino", "educação"}},
	{"juridico", []string{"jurídico", "advocacia", "direito", "legal", "processo"}},
	{"contabilidade", []string{"contabilidade", "contábil", "fiscal", "imposto", "declaração"}},
	{"saude", []string{"saúde", "médico", "exame", "tratamento", "terapia"}},
	{"beleza", []string{"beleza", "estética", "cabelo", "maquiagem", "manicure", "massagem"}},
	{"construcao", []string{"construção", "reforma", "engenharia", "arquitetura", "obra"}},
	{"transporte", []string{"transporte", "frete", "mudança", "entrega", "logística"}},
	{"manutencao", []string{"manutenção", "reparo", "conserto", "instalação", "assistência técnica"}},
}

// CategorizeService classifies a service name by case-insensitive substring
// match against the fixed keyword dictionary.
func CategorizeService(serviceName string) string {
	lower := strings.ToLower(serviceName)
	for _, c := range serviceCategories {
		for _, kw := range c.keywords {
			if strings.Contains(lower, kw) {
				return c.name
			}
		}
	}
	return CategoryOther
}
