// Package service wires the sentiment pipeline: corpus loading, feature
// matrix construction, dictionary scoring, seed-word scaling, score
// persistence and plotting, driven by a YAML config.
package service
