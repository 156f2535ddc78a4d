package publication

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/aarpublish/internal/config"
	"github.com/specialistvlad/aarpublish/internal/variant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enumerate(t *testing.T, android *config.Android) []*variant.Variant {
	t.Helper()
	vs, err := variant.Enumerate(android, "/project")
	require.NoError(t, err)
	return vs
}

func flavored() *config.Android {
	return &config.Android{
		FlavorDimensions: []string{"environment"},
		BuildTypes:       []*config.BuildType{{Name: "debug"}, {Name: "release"}},
		ProductFlavors: []*config.ProductFlavor{
			{Name: "development", Dimension: "environment"},
			{Name: "production", Dimension: "environment"},
		},
		Dependencies: []*config.Dependency{
			{Configuration: "api", GroupID: "org.apache.commons", ArtifactID: "commons-collections4", Version: "4.3"},
			{Configuration: "implementation", GroupID: "commons-io", ArtifactID: "commons-io", Version: "2.6"},
		},
	}
}

func artifactsFor(v *variant.Variant, t Toggles) []Artifact {
	var out []Artifact
	for _, k := range Select(t) {
		out = append(out, NewArtifact(k, v, "/out/"+v.Name+"."+k.String(), "task"+k.String()))
	}
	return out
}

func TestSelect_ToggleCombinations(t *testing.T) {
	testCases := []struct {
		toggles Toggles
		want    []Kind
	}{
		{Toggles{true, true}, []Kind{KindBinary, KindJavadoc, KindSources}},
		{Toggles{true, false}, []Kind{KindBinary, KindJavadoc}},
		{Toggles{false, true}, []Kind{KindBinary, KindSources}},
		{Toggles{false, false}, []Kind{KindBinary}},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, Select(tc.toggles), "toggles %+v", tc.toggles)
	}
}

func TestClassifiers(t *testing.T) {
	assert.Equal(t, "", VariantClassifier(KindBinary))
	assert.Equal(t, "javadoc", VariantClassifier(KindJavadoc))
	assert.Equal(t, "sources", VariantClassifier(KindSources))
	assert.Equal(t, "productionDebug-javadoc", AggregateClassifier("productionDebug", KindJavadoc))
	assert.Equal(t, "productionDebug-sources", AggregateClassifier("productionDebug", KindSources))
}

func TestAggregateClassifiersAreUniqueAcrossVariants(t *testing.T) {
	seen := make(map[string]string)
	for _, v := range enumerate(t, flavored()) {
		for _, a := range artifactsFor(v, DefaultToggles()) {
			if a.Kind == KindBinary {
				continue
			}
			key := a.ForAggregate().Key()
			if other, dup := seen[key]; dup {
				t.Fatalf("variants %s and %s share aggregate key %s", other, v.Name, key)
			}
			seen[key] = v.Name
		}
	}
	assert.Len(t, seen, 8)
}

func TestVariantAttributes(t *testing.T) {
	vs := enumerate(t, flavored())
	attrs := VariantAttributes(vs[2])
	assert.Equal(t, Attributes{BuildTypeAttribute: "debug", "environment": "production"}, attrs)
	assert.Equal(t, "{com.android.build.api.attributes.BuildTypeAttr=debug, environment=production}", attrs.String())

	for i := range vs {
		for j := range vs {
			if i != j {
				assert.False(t, VariantAttributes(vs[i]).Equal(VariantAttributes(vs[j])), "%s vs %s", vs[i].Name, vs[j].Name)
			}
		}
	}
}

func TestMavenScope(t *testing.T) {
	assert.Equal(t, ScopeCompile, MavenScope("releaseApiElements"))
	assert.Equal(t, ScopeRuntime, MavenScope("releaseRuntimeElements"))
	assert.Equal(t, "", MavenScope("releaseArchives"))
}

func TestIsRedundantVariant(t *testing.T) {
	assert.True(t, IsRedundantVariant([]string{"android-classes"}))
	assert.True(t, IsRedundantVariant([]string{"jar"}))
	assert.True(t, IsRedundantVariant([]string{"aar", "android-lint"}))
	assert.False(t, IsRedundantVariant([]string{"aar"}))
	assert.False(t, IsRedundantVariant([]string{"jar-sources"}))
	assert.False(t, IsRedundantVariant(nil))
}

func TestClassifierStrategy_PerVariantOnly(t *testing.T) {
	v := enumerate(t, flavored())[3]
	contributions := ClassifierStrategy{}.Contributions(Input{
		Variant:   v,
		Artifacts: artifactsFor(v, DefaultToggles()),
	})

	require.Len(t, contributions, 3)
	for _, c := range contributions {
		assert.Equal(t, "androidProductionRelease", c.Component)
		assert.Equal(t, "productionRelease", c.Variant)
	}

	archives := contributions[0]
	assert.Equal(t, "productionReleaseArchives", archives.Configuration)
	assert.Nil(t, archives.Attributes)
	require.Len(t, archives.Artifacts, 3)
	assert.Equal(t, []string{"aar", "javadoc.jar", "sources.jar"},
		[]string{archives.Artifacts[0].Key(), archives.Artifacts[1].Key(), archives.Artifacts[2].Key()})

	api := contributions[1]
	assert.Equal(t, "productionReleaseApiElements", api.Configuration)
	assert.Equal(t, ScopeCompile, api.Scope)
	assert.Equal(t, []variant.Dependency{{GroupID: "org.apache.commons", ArtifactID: "commons-collections4", Version: "4.3"}}, api.Dependencies)
	for _, s := range api.Secondary {
		assert.True(t, s.Skipped, s.Name)
	}

	runtime := contributions[2]
	assert.Equal(t, ScopeRuntime, runtime.Scope)
	assert.Len(t, runtime.Dependencies, 2)
}

func TestClassifierStrategy_DefaultAndAggregate(t *testing.T) {
	v := enumerate(t, flavored())[0]
	contributions := ClassifierStrategy{}.Contributions(Input{
		Variant:   v,
		Artifacts: artifactsFor(v, Toggles{PublishJavadoc: true}),
		Default:   true,
		Aggregate: true,
	})

	byComponent := make(map[string][]Contribution)
	for _, c := range contributions {
		byComponent[c.Component] = append(byComponent[c.Component], c)
	}

	require.Len(t, byComponent["androidDevelopmentDebug"], 3)
	require.Len(t, byComponent[DefaultComponent], 3)
	if diff := cmp.Diff(byComponent["androidDevelopmentDebug"][0].Artifacts, byComponent[DefaultComponent][0].Artifacts); diff != "" {
		t.Errorf("default component must mirror the variant artifacts (-variant +default):\n%s", diff)
	}

	aggregate := byComponent[AggregateComponent]
	require.Len(t, aggregate, 1)
	assert.Equal(t, AggregateConfiguration, aggregate[0].Configuration)
	require.Len(t, aggregate[0].Artifacts, 1, "binary archives are never aggregated")
	assert.Equal(t, "developmentDebug-javadoc", aggregate[0].Artifacts[0].Classifier)
	assert.Nil(t, aggregate[0].Attributes)
}

func TestClassifierStrategy_AggregateSkippedWithoutDocs(t *testing.T) {
	v := enumerate(t, flavored())[0]
	contributions := ClassifierStrategy{}.Contributions(Input{
		Variant:   v,
		Artifacts: artifactsFor(v, Toggles{}),
		Aggregate: true,
	})
	for _, c := range contributions {
		assert.NotEqual(t, AggregateComponent, c.Component)
	}
}

func TestAttributeStrategy_TagsArchives(t *testing.T) {
	v := enumerate(t, flavored())[1]
	contributions := AttributeStrategy{}.Contributions(Input{
		Variant:   v,
		Artifacts: artifactsFor(v, DefaultToggles()),
	})

	archives := contributions[0]
	assert.Equal(t, Attributes{
		UsageAttribute:     UsageJavadocAndSources,
		BundlingAttribute:  BundlingExternal,
		BuildTypeAttribute: "release",
		"environment":      "development",
	}, archives.Attributes)
	assert.Nil(t, contributions[1].Attributes)
}

func TestStrategiesAreDeterministic(t *testing.T) {
	for _, s := range []Strategy{ClassifierStrategy{}, AttributeStrategy{}} {
		t.Run(s.Name(), func(t *testing.T) {
			run := func() [][]Contribution {
				var all [][]Contribution
				for _, v := range enumerate(t, flavored()) {
					all = append(all, s.Contributions(Input{
						Variant:   v,
						Artifacts: artifactsFor(v, DefaultToggles()),
						Default:   v.Name == "productionRelease",
						Aggregate: true,
					}))
				}
				return all
			}
			if diff := cmp.Diff(run(), run()); diff != "" {
				t.Errorf("contributions differ between runs:\n%s", diff)
			}
		})
	}
}

func TestStrategyByName(t *testing.T) {
	s, ok := StrategyByName("")
	require.True(t, ok)
	assert.Equal(t, "classifier", s.Name())

	s, ok = StrategyByName("attributes")
	require.True(t, ok)
	assert.Equal(t, "attributes", s.Name())

	_, ok = StrategyByName("nope")
	assert.False(t, ok)
}
