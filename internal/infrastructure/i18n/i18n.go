package i18n

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"text/template"
)

//go:embed locales/*.json
var localeFiles embed.FS

// Service gerencia traduções e internacionalização. Os arquivos de
// tradução são embutidos no binário em tempo de compilação.
type Service struct {
	mu              sync.RWMutex
	translations    map[string]map[string]string // [idioma][chave]mensagem
	defaultLanguage string
}

// NewService cria um novo serviço de i18n a partir dos locales embutidos.
// defaultLang: idioma padrão (fallback)
func NewService(defaultLang string) (*Service, error) {
	s := &Service{
		translations:    make(map[string]map[string]string),
		defaultLanguage: defaultLang,
	}

	entries, err := localeFiles.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded locales: %w", err)
	}

	for _, entry := range entries {
		name := entry.Name()
		lang := strings.TrimSuffix(name, filepath.Ext(name))

		data, err := localeFiles.ReadFile("locales/" + name)
		if err != nil {
			return nil, fmt.Errorf("failed to read locale file %s: %w", name, err)
		}

		var translations map[string]string
		if err := json.Unmarshal(data, &translations); err != nil {
			return nil, fmt.Errorf("failed to parse locale file %s: %w", name, err)
		}

		s.translations[lang] = translations
	}

	if _, ok := s.translations[defaultLang]; !ok {
		return nil, fmt.Errorf("default language %s not found in locale files", defaultLang)
	}

	return s, nil
}

// T traduz uma chave para o idioma especificado, com fallback para o
// idioma padrão e por fim para a própria chave. Suporta interpolação de
// parâmetros usando templates Go ({{.Field}}, {{.Resource}}, etc.)
func (s *Service) T(lang, key string, params ...map[string]interface{}) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	message := s.getTranslation(lang, key)
	if message == "" {
		message = s.getTranslation(s.defaultLanguage, key)
	}
	if message == "" {
		return key
	}

	if len(params) == 0 || params[0] == nil {
		return message
	}

	tmpl, err := template.New("message").Parse(message)
	if err != nil {
		return message
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params[0]); err != nil {
		return message
	}
	return buf.String()
}

// IsLanguageSupported verifica se o idioma possui traduções carregadas
func (s *Service) IsLanguageSupported(lang string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.translations[lang]
	return ok
}

// GetDefaultLanguage retorna o idioma padrão
func (s *Service) GetDefaultLanguage() string {
	return s.defaultLanguage
}

// GetSupportedLanguages retorna os idiomas com traduções carregadas
func (s *Service) GetSupportedLanguages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	languages := make([]string, 0, len(s.translations))
	for lang := range s.translations {
		languages = append(languages, lang)
	}
	sort.Strings(languages)
	return languages
}

func (s *Service) getTranslation(lang, key string) string {
	if translations, ok := s.translations[lang]; ok {
		return translations[key]
	}
	return ""
}
