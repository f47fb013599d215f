// Copyright 2022 Stock Parfait

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package api

import (
	"context"
	"strconv"

	"github.com/stockparfait/fred/message"
	"github.com/stockparfait/fred/schema"
)

// query calls the endpoint at path with the client from the context and
// decodes the result into a new T.
func query[T any, PT interface {
	*T
	message.Message
}](ctx context.Context, path string, params []Param, opts []Param) (*T, error) {
	c := GetClient(ctx)
	if c == nil {
		return nil, &ConfigurationError{Message: "no FRED client in context"}
	}
	all := append(append([]Param{}, params...), opts...)
	var res T
	if err := c.Do(ctx, NewRequest(path, all...), PT(&res)); err != nil {
		return nil, err
	}
	return &res, nil
}

// raw is query returning the unparsed JSON response.
func raw(ctx context.Context, path string, params []Param, opts []Param) (string, error) {
	c := GetClient(ctx)
	if c == nil {
		return "", &ConfigurationError{Message: "no FRED client in context"}
	}
	all := append(append([]Param{}, params...), opts...)
	return c.Raw(ctx, NewRequest(path, all...))
}

func categoryID(id int) Param        { return P("category_id", strconv.Itoa(id)) }
func releaseID(id int) Param         { return P("release_id", strconv.Itoa(id)) }
func sourceID(id int) Param          { return P("source_id", strconv.Itoa(id)) }
func seriesID(id string) Param       { return P("series_id", id) }
func tagNames(tags []string) Param   { return TagNames(tags...) }
func searchText(text string) Param   { return P("search_text", text) }
func seriesSearch(text string) Param { return P("series_search_text", text) }

// Category gets a category.
func Category(ctx context.Context, id int, opts ...Param) (*schema.Categories, error) {
	return query[schema.Categories](ctx, "category", []Param{categoryID(id)}, opts)
}

// CategoryChildren gets the child categories of a category.
func CategoryChildren(ctx context.Context, id int, opts ...Param) (*schema.Categories, error) {
	return query[schema.Categories](ctx, "category/children", []Param{categoryID(id)}, opts)
}

// CategoryRelated gets the related categories of a category.
func CategoryRelated(ctx context.Context, id int, opts ...Param) (*schema.Categories, error) {
	return query[schema.Categories](ctx, "category/related", []Param{categoryID(id)}, opts)
}

// CategorySeries gets the series in a category.
func CategorySeries(ctx context.Context, id int, opts ...Param) (*schema.SeriesPage, error) {
	return query[schema.SeriesPage](ctx, "category/series", []Param{categoryID(id)}, opts)
}

// CategoryTags gets the tags for a category.
func CategoryTags(ctx context.Context, id int, opts ...Param) (*schema.TagsPage, error) {
	return query[schema.TagsPage](ctx, "category/tags", []Param{categoryID(id)}, opts)
}

// CategoryRelatedTags gets the tags related to the given tags within a
// category.
func CategoryRelatedTags(ctx context.Context, id int, tags []string, opts ...Param) (*schema.TagsPage, error) {
	return query[schema.TagsPage](ctx, "category/related_tags",
		[]Param{categoryID(id), tagNames(tags)}, opts)
}

// Releases gets all releases of economic data.
func Releases(ctx context.Context, opts ...Param) (*schema.ReleasesPage, error) {
	return query[schema.ReleasesPage](ctx, "releases", nil, opts)
}

// ReleasesDates gets release dates for all releases of economic data.
func ReleasesDates(ctx context.Context, opts ...Param) (*schema.ReleaseDatesPage, error) {
	return query[schema.ReleaseDatesPage](ctx, "releases/dates", nil, opts)
}

// Release gets a release of economic data.
func Release(ctx context.Context, id int, opts ...Param) (*schema.Releases, error) {
	return query[schema.Releases](ctx, "release", []Param{releaseID(id)}, opts)
}

// ReleaseDates gets the dates of a release.
func ReleaseDates(ctx context.Context, id int, opts ...Param) (*schema.ReleaseDatesPage, error) {
	return query[schema.ReleaseDatesPage](ctx, "release/dates", []Param{releaseID(id)}, opts)
}

// ReleaseSeries gets the series on a release.
func ReleaseSeries(ctx context.Context, id int, opts ...Param) (*schema.SeriesPage, error) {
	return query[schema.SeriesPage](ctx, "release/series", []Param{releaseID(id)}, opts)
}

// ReleaseSources gets the sources for a release.
func ReleaseSources(ctx context.Context, id int, opts ...Param) (*schema.Sources, error) {
	return query[schema.Sources](ctx, "release/sources", []Param{releaseID(id)}, opts)
}

// ReleaseTags gets the tags for a release.
func ReleaseTags(ctx context.Context, id int, opts ...Param) (*schema.TagsPage, error) {
	return query[schema.TagsPage](ctx, "release/tags", []Param{releaseID(id)}, opts)
}

// ReleaseRelatedTags gets the tags related to the given tags within a release.
func ReleaseRelatedTags(ctx context.Context, id int, tags []string, opts ...Param) (*schema.TagsPage, error) {
	return query[schema.TagsPage](ctx, "release/related_tags",
		[]Param{releaseID(id), tagNames(tags)}, opts)
}

// ReleaseTables gets the release table trees for a release.
func ReleaseTables(ctx context.Context, id int, opts ...Param) (*schema.ReleaseTables, error) {
	return query[schema.ReleaseTables](ctx, "release/tables", []Param{releaseID(id)}, opts)
}

// Series gets an economic data series.
func Series(ctx context.Context, id string, opts ...Param) (*schema.Series, error) {
	return query[schema.Series](ctx, "series", []Param{seriesID(id)}, opts)
}

// SeriesJSON is Series returning the raw JSON response.
func SeriesJSON(ctx context.Context, id string, opts ...Param) (string, error) {
	return raw(ctx, "series", []Param{seriesID(id)}, opts)
}

// SeriesCategories gets the categories of a series.
func SeriesCategories(ctx context.Context, id string, opts ...Param) (*schema.Categories, error) {
	return query[schema.Categories](ctx, "series/categories", []Param{seriesID(id)}, opts)
}

// SeriesObservations gets the observations, or data values, of a series.
func SeriesObservations(ctx context.Context, id string, opts ...Param) (*schema.SeriesObservations, error) {
	return query[schema.SeriesObservations](ctx, "series/observations", []Param{seriesID(id)}, opts)
}

// SeriesObservationsJSON is SeriesObservations returning the raw JSON response.
func SeriesObservationsJSON(ctx context.Context, id string, opts ...Param) (string, error) {
	return raw(ctx, "series/observations", []Param{seriesID(id)}, opts)
}

// SeriesRelease gets the release of a series.
func SeriesRelease(ctx context.Context, id string, opts ...Param) (*schema.Releases, error) {
	return query[schema.Releases](ctx, "series/release", []Param{seriesID(id)}, opts)
}

// SeriesSearch finds series matching the words in text.
func SeriesSearch(ctx context.Context, text string, opts ...Param) (*schema.SeriesPage, error) {
	return query[schema.SeriesPage](ctx, "series/search", []Param{searchText(text)}, opts)
}

// SeriesSearchTags gets the tags of the series matching the search text.
func SeriesSearchTags(ctx context.Context, text string, opts ...Param) (*schema.TagsPage, error) {
	return query[schema.TagsPage](ctx, "series/search/tags", []Param{seriesSearch(text)}, opts)
}

// SeriesSearchRelatedTags gets the tags related to the given tags among the
// series matching the search text.
func SeriesSearchRelatedTags(ctx context.Context, text string, tags []string, opts ...Param) (*schema.TagsPage, error) {
	return query[schema.TagsPage](ctx, "series/search/related_tags",
		[]Param{seriesSearch(text), tagNames(tags)}, opts)
}

// SeriesTags gets the tags of a series.
func SeriesTags(ctx context.Context, id string, opts ...Param) (*schema.TagsPage, error) {
	return query[schema.TagsPage](ctx, "series/tags", []Param{seriesID(id)}, opts)
}

// SeriesTagNames returns the tags of a series as a single comma-separated
// line.
func SeriesTagNames(ctx context.Context, id string) (string, error) {
	tags, err := SeriesTags(ctx, id)
	if err != nil {
		return "", err
	}
	return tags.OneLine(), nil
}

// SeriesUpdates gets the series sorted by the time they were last updated.
func SeriesUpdates(ctx context.Context, opts ...Param) (*schema.SeriesUpdates, error) {
	return query[schema.SeriesUpdates](ctx, "series/updates", nil, opts)
}

// SeriesVintageDates gets the dates when a series' data values were revised
// or new data values were released.
func SeriesVintageDates(ctx context.Context, id string, opts ...Param) (*schema.VintageDates, error) {
	return query[schema.VintageDates](ctx, "series/vintagedates", []Param{seriesID(id)}, opts)
}

// Sources gets all sources of economic data.
func Sources(ctx context.Context, opts ...Param) (*schema.SourcesPage, error) {
	return query[schema.SourcesPage](ctx, "sources", nil, opts)
}

// Source gets a source of economic data.
func Source(ctx context.Context, id int, opts ...Param) (*schema.Sources, error) {
	return query[schema.Sources](ctx, "source", []Param{sourceID(id)}, opts)
}

// SourceReleases gets the releases of a source.
func SourceReleases(ctx context.Context, id int, opts ...Param) (*schema.ReleasesPage, error) {
	return query[schema.ReleasesPage](ctx, "source/releases", []Param{sourceID(id)}, opts)
}

// Tags gets all tags, or those matching the options.
func Tags(ctx context.Context, opts ...Param) (*schema.TagsPage, error) {
	return query[schema.TagsPage](ctx, "tags", nil, opts)
}

// RelatedTags gets the tags related to the given tags.
func RelatedTags(ctx context.Context, tags []string, opts ...Param) (*schema.TagsPage, error) {
	return query[schema.TagsPage](ctx, "related_tags", []Param{tagNames(tags)}, opts)
}

// TagsSeries gets the series having all the given tags.
func TagsSeries(ctx context.Context, tags []string, opts ...Param) (*schema.SeriesPage, error) {
	return query[schema.SeriesPage](ctx, "tags/series", []Param{tagNames(tags)}, opts)
}
