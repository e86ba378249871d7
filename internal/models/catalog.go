// ABOUTME: Suggested labels offered by the intake forms for quick selection
// ABOUTME: CleanLabels trims, drops empties, and deduplicates label lists
package models

import "strings"

var CommonDiagnoses = []string{
	"Transtorno do Espectro Autista (TEA)",
	"Síndrome de Asperger",
	"Transtorno de Déficit de Atenção e Hiperatividade (TDAH)",
	"Transtorno de Ansiedade",
	"Transtorno Obsessivo-Compulsivo (TOC)",
	"Síndrome de Down",
	"Transtorno do Processamento Sensorial",
	"Dislexia",
	"Apraxia da Fala",
	"Deficiência Intelectual",
}

var CommonSensitivities = []string{
	"Sensibilidade a ruídos altos",
	"Sensibilidade a luzes brilhantes",
	"Sensibilidade tátil (texturas)",
	"Sensibilidade a odores",
	"Sensibilidade a sabores",
	"Sensibilidade ao toque",
	"Dificuldade com mudanças de rotina",
	"Sensibilidade a multidões",
	"Sensibilidade a temperaturas",
	"Sensibilidade vestibular (movimento)",
}

var CommonPreferences = []string{
	"Música calma",
	"Espaços silenciosos",
	"Rotinas estruturadas",
	"Objetos texturizados",
	"Brinquedos fidget",
	"Atividades visuais",
	"Quebra-cabeças",
	"Desenho e pintura",
	"Tecnologia/tablets",
	"Atividades físicas",
	"Animais de estimação",
	"Histórias e livros",
}

var CommonCommunicationMethods = []string{
	"Linguagem de sinais",
	"Cartões PECS",
	"Gestos",
	"Aplicativos de comunicação",
	"Comunicação por imagens",
	"Linguagem corporal",
	"Vocalização/sons",
	"Escrita",
}

var CommonStrategies = []string{
	"Espera extra para resposta",
	"Instruções visuais",
	"Rotinas de comunicação",
	"Ambiente calmo",
	"Validação de sentimentos",
	"Repetição de instruções",
	"Comunicação simples e direta",
	"Apoio visual constante",
}

// CleanLabels trims each label, drops empty ones, and removes duplicates
// while keeping first-seen order. Never returns nil.
func CleanLabels(labels []string) []string {
	out := make([]string, 0, len(labels))
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}

// ContainsLabel reports whether labels contains label exactly
func ContainsLabel(labels []string, label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}
