package chat

import (
	"fmt"
	"strings"

	"github.com/abuhisan/coffee-backend/internal/product"
)

// ReplyFunc builds the answer text and any products to show alongside it.
type ReplyFunc func(catalog []product.Product) (string, []product.Product)

// Intent is a recognised kind of question. Intents are tried in the order
// they are declared and the first one whose keyword appears in the message
// wins.
type Intent struct {
	Name        string
	Keywords    []string
	Reply       ReplyFunc
	Suggestions []string
}

// Matcher finds the intent for a free-text message.
type Matcher struct {
	intents []Intent
}

func NewMatcher(intents []Intent) *Matcher {
	out := make([]Intent, 0, len(intents))
	for _, in := range intents {
		kws := make([]string, 0, len(in.Keywords))
		for _, k := range in.Keywords {
			if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
				kws = append(kws, k)
			}
		}
		in.Keywords = kws
		out = append(out, in)
	}
	return &Matcher{intents: out}
}

// Match lower-cases text and returns the first intent with a keyword that
// is a substring of it.
func (m *Matcher) Match(text string) (Intent, bool) {
	text = strings.ToLower(text)
	for _, in := range m.intents {
		for _, k := range in.Keywords {
			if strings.Contains(text, k) {
				return in, true
			}
		}
	}
	return Intent{}, false
}

func (m *Matcher) Intents() []Intent {
	return append([]Intent(nil), m.intents...)
}

func textOnly(text string) ReplyFunc {
	return func([]product.Product) (string, []product.Product) { return text, nil }
}

func withTag(tag, text string) ReplyFunc {
	return func(catalog []product.Product) (string, []product.Product) {
		out := []product.Product{}
		for _, p := range catalog {
			if p.HasTag(tag) {
				out = append(out, p)
			}
		}
		return text, out
	}
}

func withCategory(cat product.Category, text string) ReplyFunc {
	return func(catalog []product.Product) (string, []product.Product) {
		out := []product.Product{}
		for _, p := range catalog {
			if p.Category == cat {
				out = append(out, p)
			}
		}
		return text, out
	}
}

func priceRange(catalog []product.Product) (string, []product.Product) {
	if len(catalog) == 0 {
		return "القائمة قيد التحديث حالياً، تابعنا قريباً!", nil
	}
	lo, hi := catalog[0].Price, catalog[0].Price
	for _, p := range catalog[1:] {
		if p.Price < lo {
			lo = p.Price
		}
		if p.Price > hi {
			hi = p.Price
		}
	}
	return fmt.Sprintf("لدينا %d منتجاً وتتراوح أسعارنا بين %d و %d ريال. تصفح المتجر لرؤية القائمة كاملة.", len(catalog), lo, hi), nil
}

const (
	IntentCold     = "cold"
	IntentHot      = "hot"
	IntentSweet    = "sweet"
	IntentStrong   = "strong"
	IntentHealthy  = "healthy"
	IntentMenu     = "menu"
	IntentHours    = "hours"
	IntentLocation = "location"
	IntentGreeting = "greeting"
	IntentThanks   = "thanks"
	IntentDefault  = "default"
)

const DefaultReply = "عذراً، لم أفهم سؤالك تماماً. يمكنني مساعدتك في اختيار مشروب بارد أو ساخن، أو معرفة الأسعار وأوقات العمل."

var DefaultSuggestions = []string{"مشروبات باردة", "مشروبات ساخنة", "الأسعار", "أوقات العمل"}

// DefaultIntents is the built-in intent list. Cold comes first so a message
// asking for something cold is answered as such whatever else it mentions.
func DefaultIntents() []Intent {
	return []Intent{
		{
			Name:        IntentCold,
			Keywords:    []string{"بارد", "مثلج", "ثلج", "iced", "cold"},
			Reply:       withTag("cold", "إليك مشروباتنا الباردة المنعشة 🧊"),
			Suggestions: []string{"شيء حلو", "خيارات صحية"},
		},
		{
			Name:        IntentHot,
			Keywords:    []string{"ساخن", "حار", "دافئ", "hot drink", "hot coffee", "warm"},
			Reply:       withTag("hot", "هذه مشروباتنا الساخنة ☕"),
			Suggestions: []string{"قهوة قوية", "مشروبات باردة"},
		},
		{
			Name:        IntentSweet,
			Keywords:    []string{"حلو", "سكّر", "كراميل", "شوكولا", "sweet", "caramel", "chocolate"},
			Reply:       withTag("sweet", "لمحبي الحلا، جرّب هذه 🍮"),
			Suggestions: []string{"مشروبات باردة", "الأسعار"},
		},
		{
			Name:        IntentStrong,
			Keywords:    []string{"قوي", "مركز", "اسبريسو", "إسبريسو", "strong", "espresso"},
			Reply:       withTag("strong", "قهوة قوية تصحصحك 💪"),
			Suggestions: []string{"مشروبات ساخنة", "إضافات"},
		},
		{
			Name:        IntentHealthy,
			Keywords:    []string{"صحي", "نباتي", "دايت", "healthy", "vegan"},
			Reply:       withTag("healthy", "خيارات صحية وخفيفة 🌿"),
			Suggestions: []string{"مشروبات باردة", "شاي"},
		},
		{
			Name:        IntentMenu,
			Keywords:    []string{"منيو", "قائمة", "سعر", "أسعار", "اسعار", "menu", "price"},
			Reply:       priceRange,
			Suggestions: []string{"مشروبات باردة", "مشروبات ساخنة"},
		},
		{
			Name:        IntentHours,
			Keywords:    []string{"ساعات", "دوام", "متى", "تفتح", "مفتوح", "hours", "open"},
			Reply:       textOnly("نستقبلكم يومياً من 6 صباحاً حتى 12 منتصف الليل ⏰"),
			Suggestions: []string{"الموقع", "الأسعار"},
		},
		{
			Name:        IntentLocation,
			Keywords:    []string{"وين", "موقع", "عنوان", "فرع", "location", "where"},
			Reply:       textOnly("فرعنا في الرياض، حي العليا. حياكم الله 📍"),
			Suggestions: []string{"أوقات العمل", "الأسعار"},
		},
		{
			Name:        IntentGreeting,
			Keywords:    []string{"مرحبا", "السلام", "اهلا", "أهلا", "هلا", "hello"},
			Reply:       textOnly("أهلاً وسهلاً! كيف أقدر أساعدك اليوم؟ 😊"),
			Suggestions: DefaultSuggestions,
		},
		{
			Name:        IntentThanks,
			Keywords:    []string{"شكرا", "شكراً", "مشكور", "thanks", "thank"},
			Reply:       textOnly("العفو! بالعافية مقدماً ☕"),
			Suggestions: []string{"الأسعار"},
		},
	}
}

// Reply is what the chat widget renders for one bot message.
type Reply struct {
	Intent       string            `json:"intent"`
	Text         string            `json:"text"`
	Products     []product.Product `json:"products"`
	QuickReplies []string          `json:"quickReplies"`
}

// Catalog supplies the products replies can attach.
type Catalog interface {
	List() []product.Product
}

// Responder turns a message into a reply.
type Responder struct {
	matcher *Matcher
	catalog Catalog
}

func NewResponder(m *Matcher, c Catalog) *Responder {
	return &Responder{matcher: m, catalog: c}
}

func (r *Responder) Respond(text string) Reply {
	in, ok := r.matcher.Match(text)
	if !ok || in.Reply == nil {
		return Reply{
			Intent:       IntentDefault,
			Text:         DefaultReply,
			Products:     []product.Product{},
			QuickReplies: append([]string(nil), DefaultSuggestions...),
		}
	}

	body, products := in.Reply(r.catalog.List())
	if products == nil {
		products = []product.Product{}
	}
	suggestions := in.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}
	return Reply{
		Intent:       in.Name,
		Text:         body,
		Products:     products,
		QuickReplies: append([]string(nil), suggestions...),
	}
}
