package links

// Documentation URLs for App features.
// Most point to the FiftyOne user guide at https://docs.voxel51.com/user_guide/

// ClipsViews explains clips views created from temporal detections
// and frame-level labels in video datasets.
const ClipsViews = "https://docs.voxel51.com/user_guide/app.html#app-video-clips"

// ColorScheme covers customizing label and field colors in the App.
const ColorScheme = "https://docs.voxel51.com/user_guide/app.html#app-color-schemes"

// EvaluationPatches explains patch views of true/false positives
// produced by detection evaluations.
const EvaluationPatches = "https://docs.voxel51.com/user_guide/app.html#app-evaluation-patches"

// FieldMetadata describes storing descriptions and info on dataset fields.
const FieldMetadata = "https://docs.voxel51.com/user_guide/using_datasets.html#storing-field-metadata"

// FrameFilteringDisabled explains why frame-level filtering may be
// unavailable for a video dataset and how to re-enable it.
const FrameFilteringDisabled = "https://docs.voxel51.com/user_guide/using_datasets.html#disable-frame-filtering"

// GridSettings covers the sample grid settings panel.
const GridSettings = "https://docs.voxel51.com/user_guide/app.html#grid-settings"

// ObjectPatches explains patch views of individual objects.
const ObjectPatches = "https://docs.voxel51.com/user_guide/app.html#app-object-patches"

// NameColorscale lists the named Plotly colorscales accepted by the
// color scheme editor.
const NameColorscale = "https://plotly.com/python/colorscales/"

// QPMode is the query performance guide.
const QPMode = "https://docs.voxel51.com/user_guide/app.html#query-performance"

// QPModeSummary explains summary fields, which keep sidebar filtering
// fast on large datasets.
const QPModeSummary = "https://docs.voxel51.com/user_guide/using_datasets.html#summary-fields"

// SidebarMode covers the "all" and "fast" sidebar modes.
const SidebarMode = "https://docs.voxel51.com/user_guide/app.html#sidebar-mode"

// SortBySimilarity covers sorting samples and patches by similarity.
const SortBySimilarity = "https://docs.voxel51.com/user_guide/app.html#app-similarity"
