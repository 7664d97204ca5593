package entity

// MenuCategory is a lookup row. The set is closed (seeded once, four values);
// menu writes are validated against it.
type MenuCategory struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `gorm:"uniqueIndex" json:"name"`
}

func (MenuCategory) TableName() string { return "menu_categories" }

// MenuCategories is the full category set. "전체" (all) is a client-side
// pseudo-category and is not stored.
var MenuCategories = []string{"식사류", "유부", "하절기메뉴", "사이드&음료"}

func ValidMenuCategory(name string) bool {
	for _, c := range MenuCategories {
		if c == name {
			return true
		}
	}
	return false
}
