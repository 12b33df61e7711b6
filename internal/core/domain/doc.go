// Package domain defines the core business entities for HireWire.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - JobApplication: A tracked application or inbound offer
//   - Contact: A networking contact
//   - Reminder: A dated follow-up linked to a job
//   - SocialProfile: A public profile link
//   - ResumeProfile: The candidate's résumé content
//   - DerivedMetrics and WeeklyBucket: Computed pipeline statistics
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
