// Package classify holds the keyword heuristics shared by the tender and
// doctor pipelines.
//
// Every classifier is an ordered Table of (label, keywords) rules evaluated
// by the same first-match routine: specialization detection, tender
// category detection and the institution filters. Tables are matched
// against lowercased text by substring, so rule order decides ties.
package classify
