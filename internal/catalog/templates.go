package catalog

import (
	"github.com/alchemorsel/mealplanner/internal/domain/mealplan"
	"github.com/alchemorsel/mealplanner/internal/domain/nutrition"
)

type component = mealplan.MealComponent

func template(diet nutrition.DietType, slot nutrition.MealSlot, name string, difficulty nutrition.Difficulty, prepMinutes int, components ...component) mealplan.MealTemplate {
	return mealplan.MealTemplate{
		Name:        name,
		DietType:    diet,
		Slot:        slot,
		Components:  components,
		Difficulty:  difficulty,
		PrepMinutes: prepMinutes,
	}
}

// defaultTemplates is the reference template collection: five diets, four
// slots each. Base grams are the un-scaled reference portions.
var defaultTemplates = buildDefaultTemplates()

func buildDefaultTemplates() []mealplan.MealTemplate {
	const (
		omni  = nutrition.DietTypeOmnivore
		veget = nutrition.DietTypeVegetarian
		vegan = nutrition.DietTypeVegan
		keto  = nutrition.DietTypeKeto
		pesc  = nutrition.DietTypePescatarian

		breakfast = nutrition.SlotBreakfast
		lunch     = nutrition.SlotLunch
		dinner    = nutrition.SlotDinner
		snack     = nutrition.SlotSnack

		easy     = nutrition.DifficultyEasy
		medium   = nutrition.DifficultyMedium
		advanced = nutrition.DifficultyAdvanced
	)

	return []mealplan.MealTemplate{
		// Omnivore
		template(omni, breakfast, "Berry Overnight Oats", easy, 5,
			component{FoodKey: "oats", BaseGrams: 50}, component{FoodKey: "greekYogurt", BaseGrams: 150}, component{FoodKey: "berries", BaseGrams: 80}, component{FoodKey: "almonds", BaseGrams: 15}),
		template(omni, breakfast, "Avocado Toast with Scrambled Eggs", easy, 10,
			component{FoodKey: "egg", BaseGrams: 120}, component{FoodKey: "spinach", BaseGrams: 50}, component{FoodKey: "wholeWheatBread", BaseGrams: 40}, component{FoodKey: "avocado", BaseGrams: 50}),
		template(omni, breakfast, "Cottage Cheese Bowl", easy, 3,
			component{FoodKey: "cottageCheese", BaseGrams: 200}, component{FoodKey: "banana", BaseGrams: 100}, component{FoodKey: "walnuts", BaseGrams: 15}),
		template(omni, breakfast, "Breakfast Sandwich", medium, 15,
			component{FoodKey: "wholeWheatBread", BaseGrams: 60}, component{FoodKey: "egg", BaseGrams: 100}, component{FoodKey: "cheese", BaseGrams: 20}, component{FoodKey: "tomatoes", BaseGrams: 50}),

		template(omni, lunch, "Chicken & Rice Bowl", medium, 25,
			component{FoodKey: "chickenBreast", BaseGrams: 150}, component{FoodKey: "brownRice", BaseGrams: 120}, component{FoodKey: "broccoli", BaseGrams: 100}, component{FoodKey: "oliveOil", BaseGrams: 10}),
		template(omni, lunch, "Salmon Quinoa Bowl", medium, 20,
			component{FoodKey: "salmon", BaseGrams: 150}, component{FoodKey: "quinoa", BaseGrams: 100}, component{FoodKey: "spinach", BaseGrams: 80}, component{FoodKey: "bellPeppers", BaseGrams: 50}),
		template(omni, lunch, "Beef & Sweet Potato", medium, 30,
			component{FoodKey: "leanBeef", BaseGrams: 120}, component{FoodKey: "sweetPotato", BaseGrams: 150}, component{FoodKey: "asparagus", BaseGrams: 80}, component{FoodKey: "oliveOil", BaseGrams: 8}),
		template(omni, lunch, "Tuna Avocado Sandwich", easy, 10,
			component{FoodKey: "tuna", BaseGrams: 100}, component{FoodKey: "wholeWheatBread", BaseGrams: 60}, component{FoodKey: "avocado", BaseGrams: 50}, component{FoodKey: "tomatoes", BaseGrams: 40}),

		template(omni, dinner, "Herb-Crusted Chicken", medium, 35,
			component{FoodKey: "chickenBreast", BaseGrams: 160}, component{FoodKey: "sweetPotato", BaseGrams: 150}, component{FoodKey: "broccoli", BaseGrams: 100}, component{FoodKey: "oliveOil", BaseGrams: 12}),
		template(omni, dinner, "Baked Salmon with Quinoa", medium, 30,
			component{FoodKey: "salmon", BaseGrams: 150}, component{FoodKey: "quinoa", BaseGrams: 100}, component{FoodKey: "spinach", BaseGrams: 100}, component{FoodKey: "mushrooms", BaseGrams: 60}),
		template(omni, dinner, "Pork Tenderloin Dinner", advanced, 45,
			component{FoodKey: "porkTenderloin", BaseGrams: 140}, component{FoodKey: "whitePotato", BaseGrams: 150}, component{FoodKey: "brusselsSprouts", BaseGrams: 80}, component{FoodKey: "oliveOil", BaseGrams: 10}),
		template(omni, dinner, "Turkey & Rice Stir-fry", medium, 25,
			component{FoodKey: "turkeyBreast", BaseGrams: 150}, component{FoodKey: "brownRice", BaseGrams: 120}, component{FoodKey: "kale", BaseGrams: 80}, component{FoodKey: "carrots", BaseGrams: 60}),

		template(omni, snack, "Greek Yogurt Parfait", easy, 2,
			component{FoodKey: "greekYogurt", BaseGrams: 200}, component{FoodKey: "berries", BaseGrams: 60}, component{FoodKey: "almonds", BaseGrams: 15}),
		template(omni, snack, "Apple Cottage Cheese", easy, 3,
			component{FoodKey: "cottageCheese", BaseGrams: 150}, component{FoodKey: "apple", BaseGrams: 100}, component{FoodKey: "walnuts", BaseGrams: 10}),
		template(omni, snack, "Egg & Avocado", easy, 5,
			component{FoodKey: "hardBoiledEgg", BaseGrams: 100}, component{FoodKey: "avocado", BaseGrams: 50}),
		template(omni, snack, "Cheese & Tomato Toast", easy, 5,
			component{FoodKey: "cheese", BaseGrams: 30}, component{FoodKey: "wholeWheatBread", BaseGrams: 30}, component{FoodKey: "tomatoes", BaseGrams: 40}),

		// Vegetarian
		template(veget, breakfast, "Protein Overnight Oats", easy, 5,
			component{FoodKey: "oats", BaseGrams: 50}, component{FoodKey: "greekYogurt", BaseGrams: 150}, component{FoodKey: "berries", BaseGrams: 80}, component{FoodKey: "almonds", BaseGrams: 20}),
		template(veget, breakfast, "Vegetarian Scramble", easy, 10,
			component{FoodKey: "egg", BaseGrams: 120}, component{FoodKey: "spinach", BaseGrams: 50}, component{FoodKey: "cheese", BaseGrams: 20}, component{FoodKey: "wholeWheatBread", BaseGrams: 40}),
		template(veget, breakfast, "Chia Cottage Cheese Bowl", easy, 3,
			component{FoodKey: "cottageCheese", BaseGrams: 200}, component{FoodKey: "banana", BaseGrams: 100}, component{FoodKey: "chiaSeeds", BaseGrams: 10}),

		template(veget, lunch, "Lentil Quinoa Bowl", medium, 25,
			component{FoodKey: "lentils", BaseGrams: 200}, component{FoodKey: "quinoa", BaseGrams: 120}, component{FoodKey: "broccoli", BaseGrams: 100}, component{FoodKey: "oliveOil", BaseGrams: 10}),
		template(veget, lunch, "Chickpea Rice Bowl", medium, 20,
			component{FoodKey: "chickpeas", BaseGrams: 150}, component{FoodKey: "brownRice", BaseGrams: 120}, component{FoodKey: "spinach", BaseGrams: 80}, component{FoodKey: "tomatoes", BaseGrams: 60}),
		template(veget, lunch, "Black Bean Sweet Potato", medium, 30,
			component{FoodKey: "blackBeans", BaseGrams: 150}, component{FoodKey: "sweetPotato", BaseGrams: 150}, component{FoodKey: "bellPeppers", BaseGrams: 60}, component{FoodKey: "avocado", BaseGrams: 50}),

		template(veget, dinner, "Tofu Stir-fry", medium, 25,
			component{FoodKey: "tofu", BaseGrams: 150}, component{FoodKey: "brownRice", BaseGrams: 120}, component{FoodKey: "spinach", BaseGrams: 100}, component{FoodKey: "mushrooms", BaseGrams: 60}),
		template(veget, dinner, "Lentil Curry Bowl", advanced, 40,
			component{FoodKey: "lentils", BaseGrams: 180}, component{FoodKey: "quinoa", BaseGrams: 100}, component{FoodKey: "kale", BaseGrams: 80}, component{FoodKey: "carrots", BaseGrams: 60}),
		template(veget, dinner, "Roasted Chickpea Bowl", medium, 35,
			component{FoodKey: "chickpeas", BaseGrams: 150}, component{FoodKey: "sweetPotato", BaseGrams: 150}, component{FoodKey: "broccoli", BaseGrams: 100}, component{FoodKey: "oliveOil", BaseGrams: 12}),

		template(veget, snack, "Cheese & Apple", easy, 2,
			component{FoodKey: "cheese", BaseGrams: 40}, component{FoodKey: "apple", BaseGrams: 100}, component{FoodKey: "almonds", BaseGrams: 15}),
		template(veget, snack, "Berry Yogurt Bowl", easy, 3,
			component{FoodKey: "greekYogurt", BaseGrams: 200}, component{FoodKey: "berries", BaseGrams: 60}, component{FoodKey: "walnuts", BaseGrams: 10}),
		template(veget, snack, "Tropical Cottage Cheese", easy, 3,
			component{FoodKey: "cottageCheese", BaseGrams: 150}, component{FoodKey: "pineapple", BaseGrams: 80}, component{FoodKey: "chiaSeeds", BaseGrams: 8}),

		// Vegan
		template(vegan, breakfast, "Vegan Overnight Oats", easy, 5,
			component{FoodKey: "oats", BaseGrams: 50}, component{FoodKey: "almondMilk", BaseGrams: 200}, component{FoodKey: "berries", BaseGrams: 80}, component{FoodKey: "almonds", BaseGrams: 20}),
		template(vegan, breakfast, "Tofu Scramble Toast", medium, 15,
			component{FoodKey: "tofu", BaseGrams: 100}, component{FoodKey: "spinach", BaseGrams: 50}, component{FoodKey: "wholeWheatBread", BaseGrams: 40}, component{FoodKey: "avocado", BaseGrams: 50}),
		template(vegan, breakfast, "Quinoa Breakfast Bowl", easy, 10,
			component{FoodKey: "quinoa", BaseGrams: 80}, component{FoodKey: "almondMilk", BaseGrams: 150}, component{FoodKey: "banana", BaseGrams: 100}, component{FoodKey: "chiaSeeds", BaseGrams: 10}),

		template(vegan, lunch, "Lentil Quinoa Power Bowl", medium, 25,
			component{FoodKey: "lentils", BaseGrams: 200}, component{FoodKey: "quinoa", BaseGrams: 120}, component{FoodKey: "broccoli", BaseGrams: 100}, component{FoodKey: "oliveOil", BaseGrams: 10}),
		template(vegan, lunch, "Chickpea Rice Bowl", medium, 20,
			component{FoodKey: "chickpeas", BaseGrams: 150}, component{FoodKey: "brownRice", BaseGrams: 120}, component{FoodKey: "spinach", BaseGrams: 80}, component{FoodKey: "tomatoes", BaseGrams: 60}),
		template(vegan, lunch, "Black Bean Sweet Potato", medium, 30,
			component{FoodKey: "blackBeans", BaseGrams: 150}, component{FoodKey: "sweetPotato", BaseGrams: 150}, component{FoodKey: "bellPeppers", BaseGrams: 60}, component{FoodKey: "avocado", BaseGrams: 50}),

		template(vegan, dinner, "Tofu Sweet Potato Bowl", medium, 30,
			component{FoodKey: "tofu", BaseGrams: 180}, component{FoodKey: "sweetPotato", BaseGrams: 150}, component{FoodKey: "spinach", BaseGrams: 100}, component{FoodKey: "mushrooms", BaseGrams: 60}),
		template(vegan, dinner, "Tempeh Stir-fry", medium, 25,
			component{FoodKey: "tempeh", BaseGrams: 150}, component{FoodKey: "brownRice", BaseGrams: 120}, component{FoodKey: "kale", BaseGrams: 80}, component{FoodKey: "carrots", BaseGrams: 60}),
		template(vegan, dinner, "Lentil Curry Bowl", advanced, 40,
			component{FoodKey: "lentils", BaseGrams: 180}, component{FoodKey: "quinoa", BaseGrams: 100}, component{FoodKey: "broccoli", BaseGrams: 100}, component{FoodKey: "oliveOil", BaseGrams: 12}),

		template(vegan, snack, "Apple & Almonds", easy, 1,
			component{FoodKey: "almonds", BaseGrams: 20}, component{FoodKey: "apple", BaseGrams: 100}),
		template(vegan, snack, "Avocado Toast", easy, 5,
			component{FoodKey: "avocado", BaseGrams: 80}, component{FoodKey: "wholeWheatBread", BaseGrams: 30}),
		template(vegan, snack, "Banana Chia Bowl", easy, 3,
			component{FoodKey: "banana", BaseGrams: 100}, component{FoodKey: "almonds", BaseGrams: 15}, component{FoodKey: "chiaSeeds", BaseGrams: 8}),

		// Keto
		template(keto, breakfast, "Avocado Scrambled Eggs", easy, 10,
			component{FoodKey: "egg", BaseGrams: 150}, component{FoodKey: "avocado", BaseGrams: 80}, component{FoodKey: "oliveOil", BaseGrams: 10}),
		template(keto, breakfast, "Cheesy Spinach Omelet", medium, 12,
			component{FoodKey: "egg", BaseGrams: 120}, component{FoodKey: "cheese", BaseGrams: 30}, component{FoodKey: "spinach", BaseGrams: 50}, component{FoodKey: "oliveOil", BaseGrams: 8}),
		template(keto, breakfast, "Keto Yogurt Bowl", easy, 3,
			component{FoodKey: "greekYogurt", BaseGrams: 200}, component{FoodKey: "almonds", BaseGrams: 20}, component{FoodKey: "coconutOil", BaseGrams: 5}),

		template(keto, lunch, "Salmon Avocado Salad", easy, 15,
			component{FoodKey: "salmon", BaseGrams: 150}, component{FoodKey: "spinach", BaseGrams: 100}, component{FoodKey: "oliveOil", BaseGrams: 20}, component{FoodKey: "avocado", BaseGrams: 50}),
		template(keto, lunch, "Cheesy Chicken Broccoli", medium, 25,
			component{FoodKey: "chickenBreast", BaseGrams: 150}, component{FoodKey: "broccoli", BaseGrams: 100}, component{FoodKey: "cheese", BaseGrams: 25}, component{FoodKey: "oliveOil", BaseGrams: 12}),
		template(keto, lunch, "Tuna Avocado Bowl", easy, 10,
			component{FoodKey: "tuna", BaseGrams: 120}, component{FoodKey: "avocado", BaseGrams: 80}, component{FoodKey: "oliveOil", BaseGrams: 10}, component{FoodKey: "cucumbers", BaseGrams: 60}),

		template(keto, dinner, "Herb Chicken with Broccoli", medium, 30,
			component{FoodKey: "chickenBreast", BaseGrams: 180}, component{FoodKey: "broccoli", BaseGrams: 100}, component{FoodKey: "oliveOil", BaseGrams: 15}, component{FoodKey: "cheese", BaseGrams: 20}),
		template(keto, dinner, "Baked Salmon with Asparagus", medium, 25,
			component{FoodKey: "salmon", BaseGrams: 150}, component{FoodKey: "asparagus", BaseGrams: 80}, component{FoodKey: "oliveOil", BaseGrams: 12}, component{FoodKey: "almonds", BaseGrams: 15}),
		template(keto, dinner, "Beef & Mushroom Stir-fry", medium, 20,
			component{FoodKey: "leanBeef", BaseGrams: 140}, component{FoodKey: "mushrooms", BaseGrams: 80}, component{FoodKey: "spinach", BaseGrams: 60}, component{FoodKey: "oliveOil", BaseGrams: 10}),

		template(keto, snack, "Cheese & Almonds", easy, 1,
			component{FoodKey: "cheese", BaseGrams: 50}, component{FoodKey: "almonds", BaseGrams: 20}),
		template(keto, snack, "Avocado with Olive Oil", easy, 2,
			component{FoodKey: "avocado", BaseGrams: 80}, component{FoodKey: "oliveOil", BaseGrams: 5}),
		template(keto, snack, "Keto Walnut Yogurt", easy, 3,
			component{FoodKey: "greekYogurt", BaseGrams: 200}, component{FoodKey: "walnuts", BaseGrams: 15}, component{FoodKey: "coconutOil", BaseGrams: 5}),

		// Pescatarian
		template(pesc, breakfast, "Berry Overnight Oats", easy, 5,
			component{FoodKey: "oats", BaseGrams: 50}, component{FoodKey: "greekYogurt", BaseGrams: 150}, component{FoodKey: "berries", BaseGrams: 80}),
		template(pesc, breakfast, "Avocado Toast with Eggs", easy, 10,
			component{FoodKey: "egg", BaseGrams: 120}, component{FoodKey: "spinach", BaseGrams: 50}, component{FoodKey: "wholeWheatBread", BaseGrams: 40}, component{FoodKey: "avocado", BaseGrams: 50}),

		template(pesc, lunch, "Salmon Quinoa Bowl", medium, 20,
			component{FoodKey: "salmon", BaseGrams: 150}, component{FoodKey: "quinoa", BaseGrams: 100}, component{FoodKey: "broccoli", BaseGrams: 100}, component{FoodKey: "oliveOil", BaseGrams: 10}),
		template(pesc, lunch, "Tuna Rice Bowl", easy, 15,
			component{FoodKey: "tuna", BaseGrams: 120}, component{FoodKey: "brownRice", BaseGrams: 120}, component{FoodKey: "spinach", BaseGrams: 80}, component{FoodKey: "tomatoes", BaseGrams: 60}),
		template(pesc, lunch, "Baked Cod with Sweet Potato", medium, 30,
			component{FoodKey: "cod", BaseGrams: 150}, component{FoodKey: "sweetPotato", BaseGrams: 150}, component{FoodKey: "asparagus", BaseGrams: 80}, component{FoodKey: "oliveOil", BaseGrams: 12}),

		template(pesc, dinner, "Herb-Crusted Salmon", medium, 30,
			component{FoodKey: "salmon", BaseGrams: 160}, component{FoodKey: "sweetPotato", BaseGrams: 150}, component{FoodKey: "spinach", BaseGrams: 100}, component{FoodKey: "oliveOil", BaseGrams: 12}),
		template(pesc, dinner, "Shrimp Quinoa Stir-fry", medium, 25,
			component{FoodKey: "shrimp", BaseGrams: 120}, component{FoodKey: "quinoa", BaseGrams: 100}, component{FoodKey: "bellPeppers", BaseGrams: 60}, component{FoodKey: "mushrooms", BaseGrams: 60}),
		template(pesc, dinner, "Lemon Tilapia with Rice", medium, 25,
			component{FoodKey: "tilapia", BaseGrams: 150}, component{FoodKey: "brownRice", BaseGrams: 120}, component{FoodKey: "broccoli", BaseGrams: 100}, component{FoodKey: "oliveOil", BaseGrams: 10}),

		template(pesc, snack, "Berry Yogurt Bowl", easy, 3,
			component{FoodKey: "greekYogurt", BaseGrams: 200}, component{FoodKey: "berries", BaseGrams: 60}, component{FoodKey: "almonds", BaseGrams: 15}),
		template(pesc, snack, "Apple Cottage Cheese", easy, 3,
			component{FoodKey: "cottageCheese", BaseGrams: 150}, component{FoodKey: "apple", BaseGrams: 100}, component{FoodKey: "walnuts", BaseGrams: 10}),
	}
}
