package spoonacular

import (
	"net/url"
	"strconv"

	"github.com/coolpotato/backend/internal/ingredients"
	"github.com/coolpotato/backend/internal/types"
)

// Diabetic filter values applied by every discovery query.
const (
	DiabeticDiet     = "ketogenic"
	DiabeticMaxSugar = 5
	DiabeticMaxCarbs = 30
	DefaultNumber    = 10
)

const (
	pathFindByIngredients = "/recipes/findByIngredients"
	pathComplexSearch     = "/recipes/complexSearch"
	pathRandom            = "/recipes/random"
)

// Query is a recipe API request without credentials. The client adds the
// API key when it executes the query.
type Query struct {
	Path   string
	Params url.Values
}

// Encode returns the path and query string, for logs and tests.
func (q Query) Encode() string {
	if len(q.Params) == 0 {
		return q.Path
	}
	return q.Path + "?" + q.Params.Encode()
}

// ByIngredients builds the ingredient search. Ingredients are joined in the
// given order without dedup or case changes.
func ByIngredients(list []string, flag types.DietaryFlag) Query {
	joined := ingredients.Join(list)
	params := url.Values{}
	params.Set("number", strconv.Itoa(DefaultNumber))

	if !flag.Diabetic() {
		params.Set("ingredients", joined)
		return Query{Path: pathFindByIngredients, Params: params}
	}
	params.Set("includeIngredients", joined)
	return applyDietaryFilter(Query{Path: pathComplexSearch, Params: params}, flag)
}

// ByName builds a free text search.
func ByName(name string, flag types.DietaryFlag) Query {
	params := url.Values{}
	params.Set("query", name)
	params.Set("number", strconv.Itoa(DefaultNumber))
	return applyDietaryFilter(Query{Path: pathComplexSearch, Params: params}, flag)
}

// Featured builds the random recipe listing. The random endpoint cannot cap
// sugar or carbs, so diabetic users get a randomly sorted complex search.
func Featured(flag types.DietaryFlag) Query {
	params := url.Values{}
	params.Set("number", strconv.Itoa(DefaultNumber))
	if !flag.Diabetic() {
		return Query{Path: pathRandom, Params: params}
	}
	params.Set("sort", "random")
	return applyDietaryFilter(Query{Path: pathComplexSearch, Params: params}, flag)
}

// Popular builds the popularity sorted listing.
func Popular(flag types.DietaryFlag) Query {
	params := url.Values{}
	params.Set("sort", "popularity")
	params.Set("number", strconv.Itoa(DefaultNumber))
	return applyDietaryFilter(Query{Path: pathComplexSearch, Params: params}, flag)
}

// Information builds the single recipe lookup.
func Information(recipeID int) Query {
	return Query{
		Path:   "/recipes/" + strconv.Itoa(recipeID) + "/information",
		Params: url.Values{},
	}
}

func applyDietaryFilter(q Query, flag types.DietaryFlag) Query {
	if !flag.Diabetic() {
		return q
	}
	q.Params.Set("diet", DiabeticDiet)
	q.Params.Set("maxSugar", strconv.Itoa(DiabeticMaxSugar))
	q.Params.Set("maxCarbs", strconv.Itoa(DiabeticMaxCarbs))
	return q
}
