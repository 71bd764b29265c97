// Package urls provides centralized constants for public URLs used
// throughout the application.
//
// Usage:
//
//	import "github.com/phya/waitlist/internal/urls"
//
//	fmt.Printf("Read our privacy policy at %s\n", urls.PrivacyPolicy)
package urls
