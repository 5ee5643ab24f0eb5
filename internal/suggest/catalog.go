package suggest

// PopularDishes is the curated autocomplete catalog. Order matters: an empty
// query shows the head of this list.
var PopularDishes = []string{
	"Chicken Breast",
	"Salmon",
	"Broccoli",
	"Brown Rice",
	"Sweet Potato",
	"Eggs",
	"Greek Yogurt",
	"Almonds",
	"Peanut Butter",
	"Oatmeal",
	"Banana",
	"Apple",
	"Chicken Salad",
	"Caesar Salad",
	"Grilled Cheese",
	"Pasta Carbonara",
	"Hamburger",
	"Hot Dog",
	"Pizza",
	"Sushi",
	"Tacos",
	"Burritos",
	"Curry",
	"Steak",
	"Turkey",
	"Tuna",
	"Shrimp",
	"Tofu",
	"Beans",
	"Lentils",
}
