package router

// DeepLinkOpen navigates to d only while r is active. Links aimed at a
// backgrounded node are dropped, not queued.
func (r *Router) DeepLinkOpen(d Destination) {
	if !r.usable("deepLinkOpen") {
		return
	}
	if !r.active {
		r.logger().Debug("deep link dropped on inactive router", "router", r.String(), "destination", destinationKind(d))
		return
	}
	r.logger().Debug("deep link", "router", r.String(), "destination", destinationKind(d))
	r.Navigate(d)
}

// DeepLink opens d on the tree's active node.
func (t *Tree) DeepLink(d Destination) {
	t.Active().DeepLinkOpen(d)
}

func destinationKind(d Destination) string {
	switch v := d.(type) {
	case Tab:
		return "tab:" + string(v)
	case Push:
		return "push:" + v.Tag
	case HalfSheet:
		return "sheet:" + v.ID
	case FullScreen:
		return "fullScreen:" + v.ID
	case Alert:
		return "alert"
	default:
		return "unknown"
	}
}
