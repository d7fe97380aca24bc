// Package mentorhub is the embeddable Go client of the mentorhub platform.
//
// The client runs the same filter pipelines as the HTTP API against an
// in-memory or on-disk embedded store, or against Redis or Valkey.
//
// # Platform API
//
//	client, _ := mentorhub.New(ctx)
//	_ = client.LoadSeed(ctx, "config/seed.yaml")
//	res, _ := client.Mentors(ctx, mentorhub.Filters{
//	    mentorhub.MentorSkill:      "React",
//	    mentorhub.MentorExperience: "7+",
//	})
//
// # Typed indexes
//
// Any struct can be filtered with the same engine. The schema is read from
// `mentorhub:"name,type"` tags where type is text, list, number or leading_int:
//
//	type Course struct {
//	    Title  string   `mentorhub:"title,text"`
//	    Tags   []string `mentorhub:"tags,list"`
//	    Rating float64  `mentorhub:"rating,number"`
//	    Length string   `mentorhub:"length,leading_int"` // "6 weeks"
//	}
//
//	idx, _ := mentorhub.NewIndex[Course](client, "courses")
//	_ = idx.Replace(ctx, courses)
//	hits, _ := idx.Query().Search("go").Where("tags", "backend").AtLeast("rating", 4).Limit(10).Do(ctx)
package mentorhub
