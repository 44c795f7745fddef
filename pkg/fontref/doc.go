// Package fontref classifies font references and converts them between
// their four representations.
//
// A font can be named as a face name ("Arial"), a bare file name
// ("arial.ttf"), an absolute path inside the system font directory, or an
// absolute path anywhere else. Every fontproxy operation accepts any of them;
// Layout.Classify decides which one a string is and Resolver.Resolve turns it
// into whichever representation the operation needs.
package fontref
