package builder

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/aarpublish/internal/config"
	"github.com/specialistvlad/aarpublish/internal/ctxlog"
	"github.com/specialistvlad/aarpublish/internal/publication"
	"github.com/specialistvlad/aarpublish/internal/variant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	return ctxlog.Discard(context.Background())
}

func flavoredVariants(t *testing.T) []*variant.Variant {
	t.Helper()
	vs, err := variant.Enumerate(&config.Android{
		FlavorDimensions: []string{"environment"},
		BuildTypes:       []*config.BuildType{{Name: "debug"}, {Name: "release"}},
		ProductFlavors: []*config.ProductFlavor{
			{Name: "development", Dimension: "environment"},
			{Name: "production", Dimension: "environment"},
		},
	}, "/project")
	require.NoError(t, err)
	return vs
}

func artifacts(v *variant.Variant) []publication.Artifact {
	var out []publication.Artifact
	for _, k := range publication.Select(publication.DefaultToggles()) {
		out = append(out, publication.NewArtifact(k, v, "/out/"+v.Name+"-"+k.String(), k.String()+v.Name))
	}
	return out
}

// build runs the full configure flow the aar-publish plugin performs.
func build(t *testing.T, s publication.Strategy, defaultVariant string, aggregate bool) (*Graph, error) {
	t.Helper()
	ctx := testCtx()
	b := New()
	require.NoError(t, b.AddComponent(ctx, publication.DefaultComponent, ""))
	if aggregate {
		require.NoError(t, b.AddComponent(ctx, publication.AggregateComponent, ""))
	}
	for _, v := range flavoredVariants(t) {
		require.NoError(t, b.AddComponent(ctx, publication.VariantComponentName(v.Name), v.Name))
		for _, c := range s.Contributions(publication.Input{
			Variant:   v,
			Artifacts: artifacts(v),
			Default:   v.Name == defaultVariant,
			Aggregate: aggregate,
		}) {
			require.NoError(t, b.Contribute(ctx, c))
		}
	}
	return b.Finalize(ctx)
}

func TestAddComponent_SameOwnerIsIdempotent(t *testing.T) {
	ctx := testCtx()
	b := New()
	require.NoError(t, b.AddComponent(ctx, "androidRelease", "release"))
	require.NoError(t, b.AddComponent(ctx, "androidRelease", "release"))
	assert.True(t, b.HasComponent("androidRelease"))
}

func TestAddComponent_DifferentOwnerFailsFast(t *testing.T) {
	ctx := testCtx()
	b := New()
	require.NoError(t, b.AddComponent(ctx, "androidRelease", "release"))

	err := b.AddComponent(ctx, "androidRelease", "other")
	require.ErrorIs(t, err, ErrDuplicateComponent)
	assert.Contains(t, err.Error(), "variant 'release'")
}

func TestContribute_UnknownComponent(t *testing.T) {
	err := New().Contribute(testCtx(), publication.Contribution{Component: "nope", Configuration: "x"})
	assert.ErrorIs(t, err, ErrUnknownComponent)
}

func TestFinalize_ClassifierStrategyWithAggregate(t *testing.T) {
	g, err := build(t, publication.ClassifierStrategy{}, "productionRelease", true)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"all",
		"android",
		"androidDevelopmentDebug",
		"androidDevelopmentRelease",
		"androidProductionDebug",
		"androidProductionRelease",
	}, g.ComponentNames())

	all, ok := g.Component(publication.AggregateComponent)
	require.True(t, ok)
	var keys []string
	for _, a := range all.Artifacts() {
		keys = append(keys, a.Key())
	}
	assert.Equal(t, []string{
		"developmentDebug-javadoc.jar",
		"developmentDebug-sources.jar",
		"developmentRelease-javadoc.jar",
		"developmentRelease-sources.jar",
		"productionDebug-javadoc.jar",
		"productionDebug-sources.jar",
		"productionRelease-javadoc.jar",
		"productionRelease-sources.jar",
	}, keys)

	def, ok := g.Component(publication.DefaultComponent)
	require.True(t, ok)
	for _, a := range def.Artifacts() {
		assert.Equal(t, "productionRelease", a.Variant)
	}
	api, ok := def.Configuration("productionReleaseApiElements")
	require.True(t, ok)
	assert.Equal(t, publication.ScopeCompile, api.Scope)
}

func TestFinalize_AttributeStrategyIsUnambiguous(t *testing.T) {
	g, err := build(t, publication.AttributeStrategy{}, "", false)
	require.NoError(t, err)

	comp, ok := g.Component("androidDevelopmentDebug")
	require.True(t, ok)
	archives, ok := comp.Configuration("developmentDebugArchives")
	require.True(t, ok)
	assert.Equal(t, "debug", archives.Attributes[publication.BuildTypeAttribute])
	assert.Equal(t, "development", archives.Attributes["environment"])
}

func TestFinalize_ReportsEveryCollision(t *testing.T) {
	ctx := testCtx()
	b := New()
	require.NoError(t, b.AddComponent(ctx, "shared", ""))

	vs := flavoredVariants(t)
	for _, v := range vs[:3] {
		require.NoError(t, b.Contribute(ctx, publication.Contribution{
			Component:     "shared",
			Configuration: "archives",
			Variant:       v.Name,
			Artifacts:     artifacts(v)[1:],
		}))
	}

	_, err := b.Finalize(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrArtifactCollision)
	assert.False(t, errors.Is(err, ErrAmbiguousAttributes))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Problems, 4, "javadoc and sources collide for each of the two later variants")
	assert.Contains(t, err.Error(), "artifact 'javadoc.jar' from variant 'developmentRelease'")
}

func TestFinalize_AmbiguousAttributes(t *testing.T) {
	ctx := testCtx()
	b := New()
	attrs := publication.Attributes{publication.UsageAttribute: publication.UsageJavadocAndSources}
	for _, name := range []string{"debug", "release"} {
		component := publication.VariantComponentName(name)
		require.NoError(t, b.AddComponent(ctx, component, name))
		require.NoError(t, b.Contribute(ctx, publication.Contribution{
			Component:     component,
			Configuration: name + "Archives",
			Variant:       name,
			Attributes:    attrs,
		}))
	}

	_, err := b.Finalize(ctx)
	require.ErrorIs(t, err, ErrAmbiguousAttributes)
	assert.Contains(t, err.Error(), "'androidDebug.debugArchives' (variant 'debug')")
}

func TestFinalize_FreezesBuilder(t *testing.T) {
	ctx := testCtx()
	b := New()
	_, err := b.Finalize(ctx)
	require.NoError(t, err)

	assert.ErrorIs(t, b.AddComponent(ctx, "late", ""), ErrFinalized)
	assert.ErrorIs(t, b.Contribute(ctx, publication.Contribution{}), ErrFinalized)
	_, err = b.Finalize(ctx)
	assert.ErrorIs(t, err, ErrFinalized)
}

func TestFinalize_Deterministic(t *testing.T) {
	first, err := build(t, publication.AttributeStrategy{}, "developmentDebug", true)
	require.NoError(t, err)
	second, err := build(t, publication.AttributeStrategy{}, "developmentDebug", true)
	require.NoError(t, err)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("graphs differ between runs (-first +second):\n%s", diff)
	}
}
