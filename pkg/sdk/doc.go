// Package matchd provides a Go client for the matchd resume matching API.
//
//	client := matchd.New("http://localhost:8080", matchd.WithAPIKey("secret"))
//	result, err := client.Match(ctx, resumeText, jobText)
//	if err != nil {
//	    // errors.Is(err, matchd.ErrInsufficientInput) etc.
//	}
//	fmt.Println(result.Score.Verdict, result.Explanation.Text)
package matchd
