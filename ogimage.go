// Package ogimage extracts the Open Graph image URL from a locally saved
// HTML page. It scans the page's start tags, picks the last
// <meta property="og:image"> it sees, and reports its content.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., html/, goquery/, fs/).
package ogimage
