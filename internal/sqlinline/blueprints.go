package sqlinline

const QCreateBlueprintsSchema = `--sql 4f1c9a7e-2b6d-4e8a-9c31-7d5e0b2a6f48
create table if not exists blueprints (
  seq        bigserial   not null,
  id         text        primary key,
  goal       text,
  choices    jsonb       not null,
  v1         text        not null,
  v2         text        not null,
  v3         text        not null,
  extras     jsonb       not null,
  created_at timestamptz not null default now()
);
create index if not exists blueprints_recent_idx on blueprints (created_at desc, seq desc);
`

const QInsertBlueprint = `--sql 8d3e61b0-5a4f-4c27-b9e2-13f6a0c8d752
insert into blueprints(id, goal, choices, v1, v2, v3, extras, created_at)
values ($1::text, nullif($2::text, ''), $3::jsonb, $4::text, $5::text, $6::text, $7::jsonb, $8::timestamptz)
on conflict (id) do nothing
returning id;
`

const QListBlueprints = `--sql c72a9f15-0e8b-4d3a-a6c4-5b19e7d20f3c
select id, choices, v1, v2, v3, extras, created_at
from blueprints
order by created_at desc, seq desc
limit $1::int;
`

const QSelectBlueprint = `--sql 1b8f4d27-9c3e-4a61-8e05-f2d7c6a9b314
select id, choices, v1, v2, v3, extras, created_at
from blueprints
where id = $1::text;
`

const QDeleteBlueprint = `--sql e5a0c3d9-7f12-4b8e-a4d6-3c9b2f1e8a07
delete from blueprints
where id = $1::text;
`
