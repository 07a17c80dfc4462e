package category

import "github.com/abuhisan/coffee-backend/internal/product"

// AllID is the pseudo-category that shows the whole menu.
const AllID = "all"

// CategoryItem is the public DTO returned by the category API, one per filter tab.
type CategoryItem struct {
	CategoryID   string `json:"categoryID"`
	CategoryName string `json:"categoryName"`
	Count        int    `json:"count"`
}

var labels = map[string]string{
	AllID:                            "الكل",
	string(product.CategoryArabic):   "قهوة عربية",
	string(product.CategoryEspresso): "إسبريسو",
	string(product.CategoryCold):     "مشروبات باردة",
	string(product.CategoryTea):      "شاي",
	string(product.CategoryExtras):   "إضافات",
}
