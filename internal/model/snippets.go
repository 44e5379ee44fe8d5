package model

// catalog holds the snippet variants bucketed by language.
var catalog = map[Language][]Snippet{
	Python: {
		{Python, "def train_model(X, y):\n    model = RandomForest()\n    model.fit(X, y)\n    return model"},
		{Python, "import pandas as pd\ndf = pd.read_csv('data.csv')\nresult = df.groupby('category').mean()"},
		{Python, "from sklearn.ensemble import GradientBoosting\ngb = GradientBoosting(n_estimators=100)\ngb.fit(X_train, y_train)"},
		{Python, "import numpy as np\narray = np.array([1, 2, 3, 4, 5])\nmean = np.mean(array)"},
	},
	SQL: {
		{SQL, "SELECT customer_id, \n       COUNT(*) as transactions\nFROM transactions\nGROUP BY customer_id"},
		{SQL, "SELECT * FROM users\nWHERE created_at > '2024-01-01'\nORDER BY created_at DESC"},
		{SQL, "WITH ranked_data AS (\n  SELECT *, ROW_NUMBER() \n  OVER (PARTITION BY category) as rn\n  FROM products\n)\nSELECT * FROM ranked_data WHERE rn = 1"},
	},
	JavaScript: {
		{JavaScript, "const model = tf.sequential({\n  layers: [\n    tf.layers.dense({inputShape: [784], units: 32}),\n    tf.layers.dense({units: 10})\n  ]\n});"},
		{JavaScript, "async function fetchData() {\n  const response = await fetch('/api/data');\n  const data = await response.json();\n  return data;\n}"},
		{JavaScript, "const processArray = (arr) => {\n  return arr.map(x => x * 2)\n            .filter(x => x > 10)\n            .reduce((a, b) => a + b, 0);\n};"},
	},
	R: {
		{R, "library(dplyr)\ndf <- df %>%\n  group_by(category) %>%\n  summarise(mean = mean(value))"},
		{R, "model <- lm(y ~ x1 + x2, data = dataset)\nsummary(model)\npredictions <- predict(model, newdata)"},
		{R, "library(ggplot2)\nggplot(data, aes(x = x, y = y)) +\n  geom_point() +\n  geom_smooth(method = \"lm\")"},
	},
}

// Catalog returns a copy of the snippet buckets keyed by language.
func Catalog() map[Language][]Snippet {
	out := make(map[Language][]Snippet, len(catalog))
	for lang, variants := range catalog {
		out[lang] = append([]Snippet(nil), variants...)
	}
	return out
}
