package filter_test

import (
	"testing"

	"github.com/floorcraft/danceboard/internal/domain/filter"
	"github.com/floorcraft/danceboard/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func sampleDataset() []model.Event {
	return []model.Event{
		{Name: "Salsa Night", StartDate: "01/05/2024", EndDate: "01/05/2024", Location: "Miami", URL: "https://x.test/a"},
		{Name: "Bachata Weekend", StartDate: "10/05/2024", EndDate: "12/05/2024", Location: "Berlin", URL: "https://x.test/b"},
		{Name: "Kizomba Social", StartDate: "20/06/2024", EndDate: "20/06/2024", Location: "Lisbon", URL: "http://example.com"},
		{Name: "Tango Marathon", StartDate: "01/07/2024", EndDate: "03/07/2024", Location: "Buenos Aires"},
	}
}

func TestApplyIdentity(t *testing.T) {
	Convey("Given a dataset and an all-empty filter", t, func() {
		ds := sampleDataset()
		f := filter.Filter{}

		Convey("When applying the filter", func() {
			got := filter.Apply(ds, f)

			Convey("Then the full dataset comes back unchanged and in order", func() {
				So(f.Empty(), ShouldBeTrue)
				So(got, ShouldResemble, ds)
			})
		})
	})
}

func TestApplySubsetAndOrder(t *testing.T) {
	Convey("Given a dataset and a single-field filter", t, func() {
		ds := sampleDataset()
		f := filter.Filter{StartDate: "05/2024"}

		Convey("When applying the filter", func() {
			got := filter.Apply(ds, f)

			Convey("Then every match contains the filter string and order is preserved", func() {
				So(len(got), ShouldEqual, 2)
				So(got[0].Name, ShouldEqual, "Salsa Night")
				So(got[1].Name, ShouldEqual, "Bachata Weekend")
			})

			Convey("And the input dataset is not mutated", func() {
				So(ds, ShouldResemble, sampleDataset())
			})
		})
	})
}

func TestApplyCaseInsensitive(t *testing.T) {
	Convey("Given the case-insensitive contract", t, func() {
		ds := sampleDataset()

		Convey("When filtering name by 'salsa'", func() {
			got := filter.Apply(ds, filter.Filter{Name: "salsa"})

			Convey("Then Salsa Night matches", func() {
				So(len(got), ShouldEqual, 1)
				So(got[0].Name, ShouldEqual, "Salsa Night")
			})
		})

		Convey("When filtering url by 'HTTP'", func() {
			got := filter.Apply(ds, filter.Filter{URL: "HTTP"})

			Convey("Then records with http or https urls match", func() {
				So(len(got), ShouldEqual, 3)
			})
		})

		Convey("When filtering location by 'Havana'", func() {
			got := filter.Apply(ds, filter.Filter{Location: "Havana"})

			Convey("Then nothing matches", func() {
				So(got, ShouldBeEmpty)
			})
		})
	})
}

func TestApplyConjunction(t *testing.T) {
	Convey("Given a multi-field filter", t, func() {
		ds := sampleDataset()

		Convey("When every field test passes for one record only", func() {
			got := filter.Apply(ds, filter.Filter{Name: "a", Location: "berlin", URL: "x.test"})

			Convey("Then only that record is visible", func() {
				So(len(got), ShouldEqual, 1)
				So(got[0].Name, ShouldEqual, "Bachata Weekend")
			})
		})

		Convey("When a single field test fails", func() {
			got := filter.Apply(ds, filter.Filter{Name: "bachata", Location: "miami"})

			Convey("Then the record is excluded", func() {
				So(got, ShouldBeEmpty)
			})
		})
	})
}

func TestApplyMissingFields(t *testing.T) {
	Convey("Given a record with a missing url field", t, func() {
		ds := sampleDataset() // Tango Marathon has no url

		Convey("When filtering with all-empty filters", func() {
			got := filter.Apply(ds, filter.Filter{})

			Convey("Then the record still appears", func() {
				So(len(got), ShouldEqual, len(ds))
			})
		})

		Convey("When filtering on the missing field", func() {
			got := filter.Apply(ds, filter.Filter{URL: "x.test"})

			Convey("Then the record is excluded without any failure", func() {
				for _, e := range got {
					So(e.URL, ShouldContainSubstring, "x.test")
				}
				So(len(got), ShouldEqual, 2)
			})
		})
	})
}

func TestApplyDeterminism(t *testing.T) {
	Convey("Given identical (dataset, filter) arguments", t, func() {
		ds := sampleDataset()
		f := filter.Filter{Name: "o"}

		Convey("When applying twice", func() {
			first := filter.Apply(ds, f)
			second := filter.Apply(ds, f)

			Convey("Then the results are identical", func() {
				So(second, ShouldResemble, first)
			})
		})
	})
}

func TestApplyEmptyDataset(t *testing.T) {
	Convey("Given an empty dataset", t, func() {
		Convey("When applying any filter", func() {
			got := filter.Apply(nil, filter.Filter{Name: "salsa"})

			Convey("Then the result is empty, not nil-panicking", func() {
				So(got, ShouldBeEmpty)
			})
		})
	})
}
