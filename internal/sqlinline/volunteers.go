package sqlinline

const QSelectVolunteerByEmail = `--sql e53d64e8-d051-4355-9a96-27e5f230357a
select v.volunteer_id
from volunteer v
join volunteer_email ve on v.volunteer_id = ve.volunteer_id
where ve.email = $1::text;
`

const QInsertVolunteer = `--sql 59ad17fc-dd6a-4676-bae4-9ffb08e22df3
insert into volunteer(name)
values ($1::text)
returning volunteer_id;
`

const QInsertVolunteerEmail = `--sql 69874bbf-baf2-4028-b490-87a6cb01a682
insert into volunteer_email(volunteer_id, email)
values ($1::bigint, $2::text);
`

const QInsertVolunteerPhone = `--sql 5a671722-eeb6-42de-977e-1ea597df8458
insert into volunteer_phone(volunteer_id, phone)
values ($1::bigint, $2::text)
on conflict do nothing;
`

const QInsertVolunteerSkill = `--sql d0bbeff0-4e5e-4e10-9173-0db763ad2993
insert into volunteer_skill(volunteer_id, skill)
values ($1::bigint, $2::text)
on conflict do nothing;
`

// Event participation totals are aggregated in a subquery first so the
// contact/skill joins cannot multiply the hour sums.
const QSelectVolunteerRoster = `--sql 80ab47df-a3e7-442f-95c3-d22b91f29a44
select v.volunteer_id,
       v.name,
       coalesce(string_agg(distinct vs.skill, ', '), '') as skills,
       coalesce(string_agg(distinct ve.email, ', '), '') as emails,
       coalesce(string_agg(distinct vp.phone, ', '), '') as phones,
       coalesce(p.events_count, 0) as events_count,
       coalesce(p.total_hours, 0) as total_hours
from volunteer v
left join volunteer_skill vs on v.volunteer_id = vs.volunteer_id
left join volunteer_email ve on v.volunteer_id = ve.volunteer_id
left join volunteer_phone vp on v.volunteer_id = vp.volunteer_id
left join (
    select volunteer_id,
           count(distinct event_id) as events_count,
           sum(hours_contributed) as total_hours
    from event_volunteer
    group by volunteer_id
) p on v.volunteer_id = p.volunteer_id
group by v.volunteer_id, v.name, p.events_count, p.total_hours
order by coalesce(p.total_hours, 0) desc;
`
