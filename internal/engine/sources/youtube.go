package sources

// YouTube transcript fetching is split across two files by responsibility:
//   youtube_innertube.go  — Innertube API types, constants, and low-level helpers
//   youtube_transcript.go — caption track discovery and selection, timedtext
//                           parsing, FetchTranscript / ListTranscripts
