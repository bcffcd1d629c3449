package catalog

import (
	"github.com/alchemorsel/mealplanner/internal/domain/mealplan"
	"github.com/alchemorsel/mealplanner/internal/domain/nutrition"
)

// defaultBenefitScore is the benefit assumed for a catalog benefit tag
// when no external mapping store supplies a measured score
const defaultBenefitScore = 0.5

// DefaultHealthMappings derives food-health benefit mappings from the
// catalog's benefit tags. They stand in when no external mapping store
// is configured.
func DefaultHealthMappings() []mealplan.FoodHealthMapping {
	var mappings []mealplan.FoodHealthMapping
	for _, f := range defaultFoods {
		for _, tag := range f.Benefits {
			mappings = append(mappings, mealplan.FoodHealthMapping{
				FoodKey:      f.Key,
				Condition:    nutrition.HealthCondition(tag),
				BenefitScore: defaultBenefitScore,
			})
		}
	}
	return mappings
}

// defaultFoods is the reference food table. Nutrients are per 100g.
// Restriction tags name the diets or health conditions a food conflicts
// with; benefit tags name the conditions it helps.
var defaultFoods = []nutrition.Food{
	// Lean proteins
	{Key: "chickenBreast", Name: "Chicken Breast", Protein: 31, Carbs: 0, Fats: 3, Calories: 165, Category: nutrition.CategoryProtein},
	{Key: "turkeyBreast", Name: "Turkey Breast", Protein: 30, Carbs: 0, Fats: 1, Calories: 135, Category: nutrition.CategoryProtein},
	{Key: "leanBeef", Name: "Lean Beef (95% lean)", Protein: 26, Carbs: 0, Fats: 5, Calories: 150, Category: nutrition.CategoryProtein, Restrictions: []string{"heart disease"}},
	{Key: "porkTenderloin", Name: "Pork Tenderloin", Protein: 26, Carbs: 0, Fats: 3, Calories: 130, Category: nutrition.CategoryProtein},

	// Fish and seafood
	{Key: "salmon", Name: "Salmon", Protein: 20, Carbs: 0, Fats: 13, Calories: 208, Category: nutrition.CategoryProtein, Benefits: []string{"heart disease"}},
	{Key: "cod", Name: "Cod", Protein: 18, Carbs: 0, Fats: 1, Calories: 82, Category: nutrition.CategoryProtein},
	{Key: "tuna", Name: "Tuna (canned in water)", Protein: 30, Carbs: 0, Fats: 1, Calories: 128, Category: nutrition.CategoryProtein},
	{Key: "shrimp", Name: "Shrimp", Protein: 24, Carbs: 0, Fats: 0.3, Calories: 99, Category: nutrition.CategoryProtein},
	{Key: "tilapia", Name: "Tilapia", Protein: 26, Carbs: 0, Fats: 1.7, Calories: 96, Category: nutrition.CategoryProtein},

	// Eggs and dairy proteins
	{Key: "egg", Name: "Egg (large)", Protein: 13, Carbs: 1, Fats: 11, Calories: 155, Category: nutrition.CategoryProtein},
	{Key: "eggWhites", Name: "Egg Whites", Protein: 11, Carbs: 1, Fats: 0, Calories: 52, Category: nutrition.CategoryProtein},
	{Key: "hardBoiledEgg", Name: "Hard Boiled Egg", Protein: 13, Carbs: 1, Fats: 11, Calories: 155, Category: nutrition.CategoryProtein},
	{Key: "cottageCheese", Name: "Cottage Cheese (low fat)", Protein: 11, Carbs: 4, Fats: 1, Calories: 72, Category: nutrition.CategoryDairy, Benefits: []string{"high blood pressure"}},
	{Key: "greekYogurt", Name: "Greek Yogurt (low fat)", Protein: 10, Carbs: 4, Fats: 0.4, Calories: 59, Category: nutrition.CategoryDairy, Benefits: []string{"diabetes"}},
	{Key: "cheese", Name: "Cheddar Cheese", Protein: 25, Carbs: 2, Fats: 33, Calories: 402, Category: nutrition.CategoryDairy, Restrictions: []string{"heart disease", "high blood pressure"}},

	// Plant proteins
	{Key: "tofu", Name: "Tofu (firm)", Protein: 8, Carbs: 2, Fats: 5, Calories: 76, Category: nutrition.CategoryProtein, Restrictions: []string{"soy allergy"}},
	{Key: "tempeh", Name: "Tempeh", Protein: 19, Carbs: 9, Fats: 11, Calories: 192, Category: nutrition.CategoryProtein, Restrictions: []string{"soy allergy"}},
	{Key: "seitan", Name: "Seitan", Protein: 25, Carbs: 4, Fats: 1, Calories: 120, Category: nutrition.CategoryProtein, Restrictions: []string{"gluten-free"}},

	// Legumes
	{Key: "lentils", Name: "Lentils (cooked)", Protein: 9, Carbs: 20, Fats: 0.4, Calories: 116, Category: nutrition.CategoryLegume, Benefits: []string{"diabetes", "high blood pressure"}},
	{Key: "blackBeans", Name: "Black Beans (cooked)", Protein: 8, Carbs: 23, Fats: 0.3, Calories: 132, Category: nutrition.CategoryLegume, Benefits: []string{"diabetes"}},
	{Key: "chickpeas", Name: "Chickpeas (cooked)", Protein: 8, Carbs: 27, Fats: 2.6, Calories: 164, Category: nutrition.CategoryLegume},
	{Key: "kidneyBeans", Name: "Kidney Beans (cooked)", Protein: 8, Carbs: 22, Fats: 0.5, Calories: 127, Category: nutrition.CategoryLegume},
	{Key: "edamame", Name: "Edamame (cooked)", Protein: 11, Carbs: 10, Fats: 5, Calories: 122, Category: nutrition.CategoryLegume, Restrictions: []string{"soy allergy"}},

	// Grains and starches
	{Key: "brownRice", Name: "Brown Rice (cooked)", Protein: 2.5, Carbs: 23, Fats: 0.9, Calories: 112, Category: nutrition.CategoryGrain, Benefits: []string{"diabetes"}},
	{Key: "whiteRice", Name: "White Rice (cooked)", Protein: 2.7, Carbs: 28, Fats: 0.3, Calories: 130, Category: nutrition.CategoryGrain, Restrictions: []string{"diabetes"}},
	{Key: "quinoa", Name: "Quinoa (cooked)", Protein: 4.1, Carbs: 21, Fats: 1.9, Calories: 120, Category: nutrition.CategoryGrain, Benefits: []string{"diabetes"}},
	{Key: "oats", Name: "Rolled Oats", Protein: 13, Carbs: 67, Fats: 7, Calories: 389, Category: nutrition.CategoryGrain, Benefits: []string{"high blood pressure", "diabetes", "heart disease"}},
	{Key: "barley", Name: "Barley (cooked)", Protein: 3.5, Carbs: 28, Fats: 0.8, Calories: 123, Category: nutrition.CategoryGrain, Benefits: []string{"diabetes"}},
	{Key: "buckwheat", Name: "Buckwheat (cooked)", Protein: 3.4, Carbs: 20, Fats: 0.6, Calories: 92, Category: nutrition.CategoryGrain, Benefits: []string{"diabetes"}},
	{Key: "sweetPotato", Name: "Sweet Potato", Protein: 2, Carbs: 20, Fats: 0, Calories: 86, Category: nutrition.CategoryCarb, Benefits: []string{"diabetes"}},
	{Key: "whitePotato", Name: "White Potato", Protein: 2, Carbs: 17, Fats: 0.1, Calories: 77, Category: nutrition.CategoryCarb},
	{Key: "wholeWheatBread", Name: "Whole Wheat Bread", Protein: 13, Carbs: 41, Fats: 4, Calories: 247, Category: nutrition.CategoryGrain, Restrictions: []string{"gluten-free"}},
	{Key: "wholeWheatPasta", Name: "Whole Wheat Pasta (cooked)", Protein: 5, Carbs: 25, Fats: 1, Calories: 124, Category: nutrition.CategoryGrain, Restrictions: []string{"gluten-free"}},

	// Nuts and seeds
	{Key: "almonds", Name: "Almonds", Protein: 21, Carbs: 22, Fats: 49, Calories: 579, Category: nutrition.CategoryNut, Benefits: []string{"heart disease"}},
	{Key: "walnuts", Name: "Walnuts", Protein: 15, Carbs: 14, Fats: 65, Calories: 654, Category: nutrition.CategoryNut, Benefits: []string{"heart disease"}},
	{Key: "cashews", Name: "Cashews", Protein: 18, Carbs: 30, Fats: 44, Calories: 553, Category: nutrition.CategoryNut},
	{Key: "peanuts", Name: "Peanuts", Protein: 26, Carbs: 16, Fats: 49, Calories: 567, Category: nutrition.CategoryNut},
	{Key: "chiaSeeds", Name: "Chia Seeds", Protein: 17, Carbs: 42, Fats: 31, Calories: 486, Category: nutrition.CategoryNut, Benefits: []string{"diabetes"}},
	{Key: "flaxseeds", Name: "Flaxseeds", Protein: 18, Carbs: 29, Fats: 42, Calories: 534, Category: nutrition.CategoryNut, Benefits: []string{"heart disease"}},
	{Key: "pumpkinSeeds", Name: "Pumpkin Seeds", Protein: 19, Carbs: 54, Fats: 19, Calories: 446, Category: nutrition.CategoryNut},

	// Fats and oils
	{Key: "oliveOil", Name: "Olive Oil", Protein: 0, Carbs: 0, Fats: 100, Calories: 884, Category: nutrition.CategoryOil, Benefits: []string{"heart disease"}},
	{Key: "coconutOil", Name: "Coconut Oil", Protein: 0, Carbs: 0, Fats: 100, Calories: 862, Category: nutrition.CategoryOil},
	{Key: "avocadoOil", Name: "Avocado Oil", Protein: 0, Carbs: 0, Fats: 100, Calories: 884, Category: nutrition.CategoryOil},
	{Key: "avocado", Name: "Avocado", Protein: 2, Carbs: 9, Fats: 15, Calories: 160, Category: nutrition.CategoryFat, Benefits: []string{"heart disease"}},
	{Key: "olives", Name: "Olives", Protein: 1, Carbs: 6, Fats: 11, Calories: 115, Category: nutrition.CategoryFat},

	// Vegetables
	{Key: "broccoli", Name: "Broccoli", Protein: 3, Carbs: 7, Fats: 0.3, Calories: 34, Category: nutrition.CategoryVegetable, Benefits: []string{"heart disease", "diabetes"}},
	{Key: "spinach", Name: "Spinach", Protein: 3, Carbs: 4, Fats: 0.4, Calories: 23, Category: nutrition.CategoryVegetable, Benefits: []string{"high blood pressure", "heart disease", "diabetes"}},
	{Key: "kale", Name: "Kale", Protein: 4, Carbs: 9, Fats: 1, Calories: 49, Category: nutrition.CategoryVegetable, Benefits: []string{"heart disease", "diabetes"}},
	{Key: "bellPeppers", Name: "Bell Peppers", Protein: 1, Carbs: 6, Fats: 0.3, Calories: 31, Category: nutrition.CategoryVegetable},
	{Key: "carrots", Name: "Carrots", Protein: 1, Carbs: 10, Fats: 0.2, Calories: 41, Category: nutrition.CategoryVegetable},
	{Key: "tomatoes", Name: "Tomatoes", Protein: 1, Carbs: 4, Fats: 0.2, Calories: 18, Category: nutrition.CategoryVegetable},
	{Key: "cucumbers", Name: "Cucumbers", Protein: 1, Carbs: 4, Fats: 0.1, Calories: 16, Category: nutrition.CategoryVegetable},
	{Key: "zucchini", Name: "Zucchini", Protein: 1, Carbs: 3, Fats: 0.2, Calories: 17, Category: nutrition.CategoryVegetable},
	{Key: "asparagus", Name: "Asparagus", Protein: 2, Carbs: 4, Fats: 0.1, Calories: 20, Category: nutrition.CategoryVegetable},
	{Key: "brusselsSprouts", Name: "Brussels Sprouts", Protein: 3, Carbs: 9, Fats: 0.3, Calories: 43, Category: nutrition.CategoryVegetable},
	{Key: "cauliflower", Name: "Cauliflower", Protein: 2, Carbs: 5, Fats: 0.3, Calories: 25, Category: nutrition.CategoryVegetable},
	{Key: "mushrooms", Name: "Mushrooms", Protein: 3, Carbs: 3, Fats: 0.3, Calories: 22, Category: nutrition.CategoryVegetable},

	// Fruits
	{Key: "banana", Name: "Banana", Protein: 1, Carbs: 23, Fats: 0.3, Calories: 89, Category: nutrition.CategoryFruit, Benefits: []string{"high blood pressure"}},
	{Key: "apple", Name: "Apple", Protein: 0.3, Carbs: 14, Fats: 0.2, Calories: 52, Category: nutrition.CategoryFruit, Benefits: []string{"diabetes", "heart disease"}},
	{Key: "berries", Name: "Mixed Berries", Protein: 1, Carbs: 12, Fats: 0.3, Calories: 57, Category: nutrition.CategoryFruit, Benefits: []string{"heart disease", "diabetes"}},
	{Key: "orange", Name: "Orange", Protein: 1, Carbs: 12, Fats: 0.2, Calories: 47, Category: nutrition.CategoryFruit},
	{Key: "grapes", Name: "Grapes", Protein: 0.6, Carbs: 18, Fats: 0.2, Calories: 62, Category: nutrition.CategoryFruit},
	{Key: "pineapple", Name: "Pineapple", Protein: 0.5, Carbs: 13, Fats: 0.1, Calories: 50, Category: nutrition.CategoryFruit},
	{Key: "mango", Name: "Mango", Protein: 0.8, Carbs: 15, Fats: 0.4, Calories: 60, Category: nutrition.CategoryFruit},

	// Dairy alternatives
	{Key: "almondMilk", Name: "Almond Milk (unsweetened)", Protein: 1, Carbs: 1, Fats: 3, Calories: 17, Category: nutrition.CategoryDairy, Restrictions: []string{"nut allergy"}},
	{Key: "oatMilk", Name: "Oat Milk (unsweetened)", Protein: 1, Carbs: 7, Fats: 1, Calories: 40, Category: nutrition.CategoryDairy},
	{Key: "coconutMilk", Name: "Coconut Milk (light)", Protein: 1, Carbs: 3, Fats: 2, Calories: 30, Category: nutrition.CategoryDairy},
	{Key: "soyMilk", Name: "Soy Milk (unsweetened)", Protein: 3, Carbs: 2, Fats: 2, Calories: 33, Category: nutrition.CategoryDairy, Restrictions: []string{"soy allergy"}},
}
