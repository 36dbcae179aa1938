package knowledge

// Built-in ingredient knowledge: interchange groups plus per-ingredient
// cuisine membership and broken dietary labels.

func defaultIngredients() IngredientsConfig {
	return IngredientsConfig{
		Groups: map[string][]string{
			"cooking_fats":  {"olive_oil", "butter", "ghee", "coconut_oil", "sesame_oil"},
			"cheeses":       {"parmesan", "idiazabal", "feta", "manchego", "mozzarella", "vegan_cheese"},
			"red_meats":     {"beef", "lamb", "pork", "veal", "seitan"},
			"poultry":       {"chicken", "duck", "turkey", "tofu"},
			"fish":          {"cod", "salt_cod", "salmon", "tuna", "sea_bass", "monkfish"},
			"shellfish":     {"prawns", "mussels", "squid", "octopus"},
			"grains":        {"rice", "couscous", "pasta", "quinoa", "polenta", "rice_noodles"},
			"legumes":       {"chickpeas", "lentils", "white_beans", "edamame"},
			"dairy_liquids": {"cream", "milk", "yogurt", "coconut_milk", "oat_milk"},
			"binders":       {"egg", "aquafaba"},
			"sweeteners":    {"sugar", "honey", "agave_syrup", "dates"},
			"nuts_seeds":    {"almond", "walnut", "pine_nuts", "pistachio", "sunflower_seeds"},
			"fresh_herbs":   {"basil", "parsley", "cilantro", "dill", "mint"},
			"spices":        {"saffron", "paprika", "cumin", "cinnamon", "ras_el_hanout", "curry_powder"},
			"umami_bases":   {"soy_sauce", "miso", "fish_sauce", "tamari", "anchovy_paste"},
			"aromatics":     {"garlic", "onion", "shallot", "ginger", "lemongrass"},
			"vegetables":    {"tomato", "zucchini", "eggplant", "spinach", "mushrooms", "root_vegetables", "seaweed"},
			"fruits":        {"lemon", "orange", "berries", "mango", "apple", "figs"},
		},
		Ingredients: map[string]IngredientInfo{
			"olive_oil":   {Cultures: []string{"mediterranean", "spanish", "italian", "catalan", "greek", "universal"}},
			"butter":      {Cultures: []string{"french", "nordic"}, NonCompliant: []string{"vegan", "lactose-free"}},
			"ghee":        {Cultures: []string{"indian"}, NonCompliant: []string{"vegan", "lactose-free"}},
			"coconut_oil": {Cultures: []string{"thai", "vietnamese", "indian", "universal"}},
			"sesame_oil":  {Cultures: []string{"chinese", "japanese", "korean"}},

			"parmesan":     {Cultures: []string{"italian"}, NonCompliant: []string{"vegan", "lactose-free"}},
			"idiazabal":    {Cultures: []string{"basque", "spanish"}, NonCompliant: []string{"vegan", "lactose-free"}},
			"feta":         {Cultures: []string{"greek"}, NonCompliant: []string{"vegan", "lactose-free"}},
			"manchego":     {Cultures: []string{"spanish"}, NonCompliant: []string{"vegan", "lactose-free"}},
			"mozzarella":   {Cultures: []string{"italian"}, NonCompliant: []string{"vegan", "lactose-free"}},
			"vegan_cheese": {Cultures: []string{"universal"}},

			"beef":   {Cultures: []string{"universal"}, NonCompliant: []string{"vegan", "vegetarian"}},
			"lamb":   {Cultures: []string{"moroccan", "turkish", "lebanese", "greek"}, NonCompliant: []string{"vegan", "vegetarian"}},
			"pork":   {Cultures: []string{"spanish", "catalan", "chinese"}, NonCompliant: []string{"vegan", "vegetarian", "halal", "kosher"}},
			"veal":   {Cultures: []string{"french", "italian"}, NonCompliant: []string{"vegan", "vegetarian"}},
			"seitan": {Cultures: []string{"universal"}, NonCompliant: []string{"gluten-free"}},

			"chicken": {Cultures: []string{"universal"}, NonCompliant: []string{"vegan", "vegetarian"}},
			"duck":    {Cultures: []string{"french", "chinese"}, NonCompliant: []string{"vegan", "vegetarian"}},
			"turkey":  {Cultures: []string{"american"}, NonCompliant: []string{"vegan", "vegetarian"}},
			"tofu":    {Cultures: []string{"chinese", "japanese", "korean", "universal"}},

			"cod":      {Cultures: []string{"nordic", "universal"}, NonCompliant: []string{"vegan", "vegetarian"}},
			"salt_cod": {Cultures: []string{"basque", "catalan", "spanish"}, NonCompliant: []string{"vegan", "vegetarian"}},
			"salmon":   {Cultures: []string{"nordic", "japanese"}, NonCompliant: []string{"vegan", "vegetarian"}},
			"tuna":     {Cultures: []string{"japanese", "mediterranean"}, NonCompliant: []string{"vegan", "vegetarian"}},
			"sea_bass": {Cultures: []string{"mediterranean", "greek"}, NonCompliant: []string{"vegan", "vegetarian"}},
			"monkfish": {Cultures: []string{"basque", "galician"}, NonCompliant: []string{"vegan", "vegetarian"}},

			"prawns":  {Cultures: []string{"mediterranean", "thai"}, NonCompliant: []string{"vegan", "vegetarian", "kosher"}},
			"mussels": {Cultures: []string{"galician", "french"}, NonCompliant: []string{"vegan", "vegetarian", "kosher"}},
			"squid":   {Cultures: []string{"mediterranean", "japanese"}, NonCompliant: []string{"vegan", "vegetarian", "kosher"}},
			"octopus": {Cultures: []string{"galician", "greek", "japanese"}, NonCompliant: []string{"vegan", "vegetarian", "kosher"}},

			"rice":         {Cultures: []string{"universal"}},
			"couscous":     {Cultures: []string{"moroccan", "lebanese"}, NonCompliant: []string{"gluten-free"}},
			"pasta":        {Cultures: []string{"italian"}, NonCompliant: []string{"gluten-free"}},
			"quinoa":       {Cultures: []string{"universal"}},
			"polenta":      {Cultures: []string{"italian"}},
			"rice_noodles": {Cultures: []string{"thai", "vietnamese", "chinese"}},

			"chickpeas":   {Cultures: []string{"moroccan", "lebanese", "spanish", "indian", "universal"}},
			"lentils":     {Cultures: []string{"indian", "french", "universal"}},
			"white_beans": {Cultures: []string{"spanish", "catalan", "universal"}},
			"edamame":     {Cultures: []string{"japanese", "chinese"}},

			"cream":        {Cultures: []string{"french"}, NonCompliant: []string{"vegan", "lactose-free"}},
			"milk":         {Cultures: []string{"universal"}, NonCompliant: []string{"vegan", "lactose-free"}},
			"yogurt":       {Cultures: []string{"greek", "turkish", "indian"}, NonCompliant: []string{"vegan", "lactose-free"}},
			"coconut_milk": {Cultures: []string{"thai", "vietnamese", "indian", "universal"}},
			"oat_milk":     {Cultures: []string{"universal"}},

			"egg":      {Cultures: []string{"universal"}, NonCompliant: []string{"vegan"}},
			"aquafaba": {Cultures: []string{"universal"}},

			"sugar":       {Cultures: []string{"universal"}},
			"honey":       {Cultures: []string{"greek", "universal"}, NonCompliant: []string{"vegan"}},
			"agave_syrup": {Cultures: []string{"mexican", "universal"}},
			"dates":       {Cultures: []string{"moroccan", "lebanese", "turkish"}},

			"almond":          {Cultures: []string{"catalan", "spanish", "moroccan"}, NonCompliant: []string{"nut-free"}},
			"walnut":          {Cultures: []string{"french", "turkish"}, NonCompliant: []string{"nut-free"}},
			"pine_nuts":       {Cultures: []string{"italian", "catalan", "lebanese"}, NonCompliant: []string{"nut-free"}},
			"pistachio":       {Cultures: []string{"turkish", "lebanese"}, NonCompliant: []string{"nut-free"}},
			"sunflower_seeds": {Cultures: []string{"universal"}},

			"basil":    {Cultures: []string{"italian", "thai"}},
			"parsley":  {Cultures: []string{"mediterranean", "universal"}},
			"cilantro": {Cultures: []string{"mexican", "thai", "vietnamese", "indian"}},
			"dill":     {Cultures: []string{"nordic", "greek", "russian"}},
			"mint":     {Cultures: []string{"moroccan", "lebanese", "turkish"}},

			"saffron":       {Cultures: []string{"spanish", "indian"}},
			"paprika":       {Cultures: []string{"spanish"}},
			"cumin":         {Cultures: []string{"moroccan", "indian", "mexican"}},
			"cinnamon":      {Cultures: []string{"moroccan", "universal"}},
			"ras_el_hanout": {Cultures: []string{"moroccan"}},
			"curry_powder":  {Cultures: []string{"indian"}},

			"soy_sauce":     {Cultures: []string{"chinese", "japanese", "korean"}, NonCompliant: []string{"gluten-free"}},
			"miso":          {Cultures: []string{"japanese"}},
			"fish_sauce":    {Cultures: []string{"thai", "vietnamese"}, NonCompliant: []string{"vegan", "vegetarian"}},
			"tamari":        {Cultures: []string{"japanese", "universal"}},
			"anchovy_paste": {Cultures: []string{"italian", "mediterranean"}, NonCompliant: []string{"vegan", "vegetarian"}},

			"garlic":     {Cultures: []string{"universal"}},
			"onion":      {Cultures: []string{"universal"}},
			"shallot":    {Cultures: []string{"french", "vietnamese"}},
			"ginger":     {Cultures: []string{"chinese", "japanese", "thai", "indian"}},
			"lemongrass": {Cultures: []string{"thai", "vietnamese"}},

			"tomato":          {Cultures: []string{"mediterranean", "spanish", "italian", "mexican", "universal"}},
			"zucchini":        {Cultures: []string{"mediterranean", "universal"}},
			"eggplant":        {Cultures: []string{"mediterranean", "turkish", "lebanese"}},
			"spinach":         {Cultures: []string{"universal"}},
			"mushrooms":       {Cultures: []string{"french", "japanese", "universal"}},
			"root_vegetables": {Cultures: []string{"nordic", "russian", "universal"}},
			"seaweed":         {Cultures: []string{"japanese", "korean"}},

			"lemon":   {Cultures: []string{"mediterranean", "greek", "universal"}},
			"orange":  {Cultures: []string{"spanish", "mediterranean", "universal"}},
			"berries": {Cultures: []string{"nordic", "universal"}},
			"mango":   {Cultures: []string{"thai", "indian", "mexican"}},
			"apple":   {Cultures: []string{"french", "nordic", "universal"}},
			"figs":    {Cultures: []string{"mediterranean", "turkish", "greek"}},
		},
	}
}
