package glang

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
)

//go:embed lang/*.json
var dictionaries embed.FS

type LangType int

const (
	EN LangType = iota
	RU
	ZZ
)

func LangTypeByString(lang string) LangType {
	switch lang {
	case "en":
		return EN
	case "ru":
		return RU
	default:
	}
	return ZZ
}

func (t LangType) String() string {
	switch t {
	case EN:
		return "en"
	case RU:
		return "ru"
	default:
	}
	return ""
}

type GUILangWorker struct {
	lang LangType
	dict map[string]string
}

// create LangWorker for lang ("en" or "ru")
func NewGUILangWorker(lang string) (*GUILangWorker, error) {
	lw := &GUILangWorker{dict: make(map[string]string)}
	t := LangTypeByString(lang)
	if t == ZZ {
		return nil, errors.New("unsupported lang")
	}
	if err := lw.SetLang(t); err != nil {
		return nil, err
	}
	return lw, nil
}

func (lw *GUILangWorker) GetLang() LangType {
	return lw.lang
}

func (lw *GUILangWorker) SetLang(l LangType) error {
	if l == ZZ {
		return errors.New("unsupported lang")
	}
	data, err := dictionaries.ReadFile("lang/" + l.String() + ".json")
	if err != nil {
		return err
	}
	dict := make(map[string]string)
	if err := json.Unmarshal(data, &dict); err != nil {
		return fmt.Errorf("error parse %s dictionary: %w", l, err)
	}
	lw.lang = l
	lw.dict = dict
	return nil
}

// Toggle switches between the two bundled languages
func (lw *GUILangWorker) Toggle() error {
	if lw.lang == EN {
		return lw.SetLang(RU)
	}
	return lw.SetLang(EN)
}

func (lw *GUILangWorker) T(key string) string {
	if v, ok := lw.dict[key]; ok {
		return v
	}
	return key // if key is not found
}

// Tf formats a translated template
func (lw *GUILangWorker) Tf(key string, args ...interface{}) string {
	return fmt.Sprintf(lw.T(key), args...)
}
