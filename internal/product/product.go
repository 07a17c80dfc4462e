package product

import "strings"

// Category is the menu section a product belongs to.
type Category string

const (
	CategoryArabic   Category = "arabic"
	CategoryEspresso Category = "espresso"
	CategoryCold     Category = "cold"
	CategoryTea      Category = "tea"
	CategoryExtras   Category = "extras"
)

// AllowedCategories lists the supported categories in menu order.
var AllowedCategories = []Category{
	CategoryArabic,
	CategoryEspresso,
	CategoryCold,
	CategoryTea,
	CategoryExtras,
}

// ParseCategory accepts a category slug in any case.
func ParseCategory(s string) (Category, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range AllowedCategories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Product is an entry of the coffee menu. The name is unique and doubles as
// the identifier the storefront sends back when adding to the cart.
type Product struct {
	Name        string   `json:"name"`
	Price       int      `json:"price"`
	Emoji       string   `json:"emoji"`
	Category    Category `json:"category"`
	Tags        []string `json:"tags"`
	Description string   `json:"description,omitempty"`
}

// HasTag reports whether the product carries the given tag.
func (p Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// DefaultCatalog returns a fresh copy of the built-in menu in declaration order.
func DefaultCatalog() []Product {
	out := make([]Product, len(defaultCatalog))
	for i, p := range defaultCatalog {
		p.Tags = append([]string(nil), p.Tags...)
		out[i] = p
	}
	return out
}

var defaultCatalog = []Product{
	{Name: "قهوة عربية أصيلة", Price: 12, Emoji: "☕", Category: CategoryArabic, Tags: []string{"hot", "traditional", "spiced", "light"}, Description: "قهوة شقراء بالهيل على الطريقة النجدية"},
	{Name: "قهوة بالزعفران", Price: 16, Emoji: "🫖", Category: CategoryArabic, Tags: []string{"hot", "traditional", "spiced", "premium", "floral"}, Description: "قهوة عربية مع زعفران فاخر"},
	{Name: "قهوة دارك روست", Price: 14, Emoji: "🌰", Category: CategoryArabic, Tags: []string{"hot", "strong", "bold"}, Description: "تحميص داكن بنكهة جريئة"},
	{Name: "إسبريسو مضاعف", Price: 15, Emoji: "🍵", Category: CategoryEspresso, Tags: []string{"hot", "strong", "bold", "concentrate"}, Description: "جرعتان مركزتان من الإسبريسو"},
	{Name: "كافيه لاتيه", Price: 18, Emoji: "🥛", Category: CategoryEspresso, Tags: []string{"hot", "milky", "smooth", "creamy"}, Description: "إسبريسو مع حليب مبخر ناعم"},
	{Name: "كابتشينو", Price: 18, Emoji: "☁️", Category: CategoryEspresso, Tags: []string{"hot", "milky", "foamy", "balanced"}, Description: "رغوة حليب كثيفة فوق الإسبريسو"},
	{Name: "موكا", Price: 20, Emoji: "🍫", Category: CategoryEspresso, Tags: []string{"hot", "sweet", "chocolate", "indulgent"}, Description: "إسبريسو بالشوكولاتة والحليب"},
	{Name: "قهوة باردة مثلّجة", Price: 20, Emoji: "🧊", Category: CategoryCold, Tags: []string{"cold", "refreshing", "iced", "strong"}, Description: "قهوة مقطرة على الثلج"},
	{Name: "فرابيه كراميل", Price: 22, Emoji: "🧋", Category: CategoryCold, Tags: []string{"cold", "sweet", "caramel", "indulgent", "creamy"}, Description: "مشروب مثلج مخفوق بالكراميل"},
	{Name: "ماتشا لاتيه بارد", Price: 22, Emoji: "💚", Category: CategoryCold, Tags: []string{"cold", "healthy", "floral", "milky"}, Description: "ماتشا ياباني مع حليب بارد"},
	{Name: "شاي مغربي بالنعنع", Price: 10, Emoji: "🍃", Category: CategoryTea, Tags: []string{"hot", "refreshing", "minty", "traditional"}, Description: "شاي أخضر بالنعنع الطازج"},
	{Name: "تشاي هندي", Price: 15, Emoji: "🫚", Category: CategoryTea, Tags: []string{"hot", "spiced", "milky", "warm", "creamy"}, Description: "شاي بالحليب والبهارات الهندية"},
	{Name: "كركديه بارد", Price: 12, Emoji: "🌸", Category: CategoryTea, Tags: []string{"cold", "refreshing", "floral", "healthy"}, Description: "منقوع الكركديه المثلج"},
	{Name: "صوص الكراميل", Price: 3, Emoji: "🍮", Category: CategoryExtras, Tags: []string{"extra", "sweet", "caramel", "topping"}, Description: "إضافة صوص كراميل لأي مشروب"},
	{Name: "مقياس إضافي من القهوة", Price: 4, Emoji: "🫙", Category: CategoryExtras, Tags: []string{"extra", "strong", "bold", "concentrate"}, Description: "جرعة إسبريسو إضافية"},
	{Name: "حليب نباتي (لوز / شوفان)", Price: 5, Emoji: "🥛", Category: CategoryExtras, Tags: []string{"extra", "vegan", "healthy", "milky"}, Description: "بديل نباتي للحليب"},
}
