package router

import "errors"

// Resource registers the CRUD routes of controller under pattern:
//
//	GET|HEAD       /posts               index
//	POST           /posts               store
//	GET|HEAD       /posts/create        create
//	POST|DELETE    /posts/{id}/delete   destroy
//	POST|PUT|PATCH /posts/{id}/edit     update
//	GET|HEAD       /posts/{id}/edit     edit
//	GET|HEAD       /posts/{id}          show
//
// The routes are registered in this order, so /posts/create wins over
// /posts/{id}.
func (r *Router) Resource(pattern, controller string) error {
	return errors.Join(
		r.Match("GET|HEAD", pattern, ActionOf(controller, "index")).Err(),
		r.Post(pattern, ActionOf(controller, "store")).Err(),
		r.Match("GET|HEAD", pattern+"/create", ActionOf(controller, "create")).Err(),
		r.Match("POST|DELETE", pattern+"/{id}/delete", ActionOf(controller, "destroy")).Err(),
		r.Match("POST|PUT|PATCH", pattern+"/{id}/edit", ActionOf(controller, "update")).Err(),
		r.Match("GET|HEAD", pattern+"/{id}/edit", ActionOf(controller, "edit")).Err(),
		r.Match("GET|HEAD", pattern+"/{id}", ActionOf(controller, "show")).Err(),
	)
}

// APIResource is like Resource without the create and edit form routes.
func (r *Router) APIResource(pattern, controller string) error {
	return errors.Join(
		r.Match("GET|HEAD", pattern, ActionOf(controller, "index")).Err(),
		r.Post(pattern, ActionOf(controller, "store")).Err(),
		r.Match("POST|DELETE", pattern+"/{id}/delete", ActionOf(controller, "destroy")).Err(),
		r.Match("POST|PUT|PATCH", pattern+"/{id}/edit", ActionOf(controller, "update")).Err(),
		r.Match("GET|HEAD", pattern+"/{id}", ActionOf(controller, "show")).Err(),
	)
}
